package repository

import (
    "context"
    "database/sql"
)

// HotelRepo provides read access to the hotels table.  The engine only
// needs hotel identities to scope allocation queries and to expand the
// "all hotels" case of calendar blocking.
type HotelRepo struct {
    db *sql.DB
}

// NewHotelRepo returns a new HotelRepo bound to the given database.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

// ExistsTx reports whether a hotel with the given id exists.  The
// query runs inside the caller's transaction.
func (r *HotelRepo) ExistsTx(ctx context.Context, tx *sql.Tx, hotelID uint64) (bool, error) {
    var one int
    err := tx.QueryRowContext(ctx, `SELECT 1 FROM hotels WHERE id = ?`, hotelID).Scan(&one)
    if err == sql.ErrNoRows {
        return false, nil
    }
    if err != nil {
        return false, err
    }
    return true, nil
}

// IDsTx returns the ids of all hotels, ordered by id for deterministic
// iteration when calendar blocking targets every property.
func (r *HotelRepo) IDsTx(ctx context.Context, tx *sql.Tx) ([]uint64, error) {
    rows, err := tx.QueryContext(ctx, `SELECT id FROM hotels ORDER BY id`)
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
