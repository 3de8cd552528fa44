package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/hotel-property-management/internal/model"
)

// ParkingRepo covers vehicle categories, parking spots and the
// reservation_parking assignment table.  Spot occupancy mirrors room
// occupancy: two assignments for one spot must never overlap in time.
type ParkingRepo struct {
    db *sql.DB
}

// NewParkingRepo returns a new ParkingRepo bound to the given database.
func NewParkingRepo(db *sql.DB) *ParkingRepo { return &ParkingRepo{db: db} }

// CapacityUnitsTx resolves how many capacity units one vehicle of the
// category consumes.  An unknown category resolves to zero, which the
// allocator treats as "unconfigured, skip silently".
func (r *ParkingRepo) CapacityUnitsTx(ctx context.Context, tx *sql.Tx, categoryID uint64) (int, error) {
    var units int
    err := tx.QueryRowContext(ctx,
        `SELECT capacity_units FROM vehicle_categories WHERE id = ?`, categoryID).Scan(&units)
    if err == sql.ErrNoRows {
        return 0, nil
    }
    if err != nil {
        return 0, err
    }
    return units, nil
}

// FindFreeSpotsTx returns spots of the hotel rated for at least the
// required capacity units with no assignment overlapping [from, to).
// Spots come back ordered by id, the stable assignment key.  Matched
// spot rows are locked with FOR UPDATE for the same reason room scans
// are: the read and the later insert must act as one.
func (r *ParkingRepo) FindFreeSpotsTx(ctx context.Context, tx *sql.Tx, hotelID uint64, units int, from, to string) ([]model.ParkingSpot, error) {
    const q = `SELECT s.id, s.parking_lot_id, s.label, s.capacity
               FROM parking_spots s
               JOIN parking_lots l ON l.id = s.parking_lot_id
               WHERE l.hotel_id = ? AND s.capacity >= ?
                 AND NOT EXISTS (
                     SELECT 1 FROM reservation_parking rp
                     WHERE rp.parking_spot_id = s.id
                       AND rp.from_date < ? AND rp.to_date > ?
                 )
               ORDER BY s.id
               FOR UPDATE`
    rows, err := tx.QueryContext(ctx, q, hotelID, units, to, from)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.ParkingSpot
    for rows.Next() {
        var s model.ParkingSpot
        if err := rows.Scan(&s.ID, &s.LotID, &s.Label, &s.Capacity); err != nil {
            return nil, err
        }
        out = append(out, s)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// AssignmentRecord carries the columns needed to persist one
// spot-to-reservation assignment.
type AssignmentRecord struct {
    HotelID       uint64
    ReservationID string
    SpotID        uint64
    FromDate      string // YYYY-MM-DD
    ToDate        string // YYYY-MM-DD, exclusive
    UnitPrice     int
}

// CreateAssignmentsBulkTx inserts multiple reservation_parking rows in
// a single statement.  Passing an empty slice has no effect.
func (r *ParkingRepo) CreateAssignmentsBulkTx(ctx context.Context, tx *sql.Tx, assignments []AssignmentRecord) error {
    if len(assignments) == 0 {
        return nil
    }
    query := `INSERT INTO reservation_parking (hotel_id, reservation_id, parking_spot_id, from_date, to_date, unit_price) VALUES `
    args := make([]interface{}, 0, len(assignments)*6)
    for i, a := range assignments {
        if i > 0 {
            query += ","
        }
        query += "(?, ?, ?, ?, ?, ?)"
        args = append(args, a.HotelID, a.ReservationID, a.SpotID, a.FromDate, a.ToDate, a.UnitPrice)
    }
    _, err := tx.ExecContext(ctx, query, args...)
    return err
}
