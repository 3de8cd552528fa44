package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/hotel-property-management/internal/model"
)

const dateLayout = "2006-01-02"

// RoomRepo encapsulates database operations on rooms and room types.
type RoomRepo struct {
    db *sql.DB
}

// NewRoomRepo constructs a RoomRepo given a DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// FindFreeByTypeTx returns every for-sale room of the given type that
// has no active reservation detail on any date in [from, to).  The
// result carries floor, room number and assignment priority so the
// allocator can apply its ordering; rows come back in no particular
// order.  The matched room rows are locked with FOR UPDATE so that
// concurrent allocation requests for the same hotel serialize instead
// of double-assigning a room between the availability read and the
// detail insert.
func (r *RoomRepo) FindFreeByTypeTx(ctx context.Context, tx *sql.Tx, hotelID, roomTypeID uint64, from, to string) ([]model.Room, error) {
    const q = `SELECT r.id, r.hotel_id, r.room_type_id, r.floor, r.room_number, r.capacity, r.assignment_priority
               FROM rooms r
               WHERE r.hotel_id = ? AND r.room_type_id = ? AND r.for_sale = 1
                 AND NOT EXISTS (
                     SELECT 1 FROM reservation_details d
                     WHERE d.room_id = r.id
                       AND d.cancelled IS NULL
                       AND d.date >= ? AND d.date < ?
                 )
               FOR UPDATE`
    rows, err := tx.QueryContext(ctx, q, hotelID, roomTypeID, from, to)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Room
    for rows.Next() {
        var rm model.Room
        var prio sql.NullInt64
        if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.RoomTypeID, &rm.Floor, &rm.RoomNumber, &rm.Capacity, &prio); err != nil {
            return nil, err
        }
        if prio.Valid {
            p := int(prio.Int64)
            rm.AssignmentPriority = &p
        }
        out = append(out, rm)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// FindFreeByType is the non-locking variant of FindFreeByTypeTx for
// read-only availability queries outside any transaction.
func (r *RoomRepo) FindFreeByType(ctx context.Context, hotelID, roomTypeID uint64, from, to string) ([]model.Room, error) {
    const q = `SELECT r.id, r.hotel_id, r.room_type_id, r.floor, r.room_number, r.capacity, r.assignment_priority
               FROM rooms r
               WHERE r.hotel_id = ? AND r.room_type_id = ? AND r.for_sale = 1
                 AND NOT EXISTS (
                     SELECT 1 FROM reservation_details d
                     WHERE d.room_id = r.id
                       AND d.cancelled IS NULL
                       AND d.date >= ? AND d.date < ?
                 )`
    rows, err := r.db.QueryContext(ctx, q, hotelID, roomTypeID, from, to)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []model.Room
    for rows.Next() {
        var rm model.Room
        var prio sql.NullInt64
        if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.RoomTypeID, &rm.Floor, &rm.RoomNumber, &rm.Capacity, &prio); err != nil {
            return nil, err
        }
        if prio.Valid {
            p := int(prio.Int64)
            rm.AssignmentPriority = &p
        }
        out = append(out, rm)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// IDsByHotelTx returns the ids of all rooms of a hotel ordered by
// floor and room number.  Used when calendar blocking targets "all
// rooms" of a property.
func (r *RoomRepo) IDsByHotelTx(ctx context.Context, tx *sql.Tx, hotelID uint64) ([]uint64, error) {
    rows, err := tx.QueryContext(ctx,
        `SELECT id FROM rooms WHERE hotel_id = ? ORDER BY floor, room_number`, hotelID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var ids []uint64
    for rows.Next() {
        var id uint64
        if err := rows.Scan(&id); err != nil {
            return nil, err
        }
        ids = append(ids, id)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return ids, nil
}
