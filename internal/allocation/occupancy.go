package allocation

import (
    "context"
    "database/sql"
    "time"
)

// Inventory is the read-only occupancy view: it answers whether a
// (hotel, room, date) triple is taken by an active reservation detail.
// There is no caching; every question goes to storage inside the
// caller's transaction so the answer can never be stale.
type Inventory struct {
    Details DetailStore
}

// NewInventory returns an Inventory over the given detail store.
func NewInventory(details DetailStore) *Inventory { return &Inventory{Details: details} }

// IsOccupied reports whether an active detail exists for the triple.
func (i *Inventory) IsOccupied(ctx context.Context, tx *sql.Tx, hotelID, roomID uint64, date time.Time) (bool, error) {
    occupied, err := i.Details.ExistsActiveTx(ctx, tx, hotelID, roomID, date.Format(DateLayout))
    if err != nil {
        return false, storage("occupancy check failed", err)
    }
    return occupied, nil
}

// FirstConflict returns the earliest occupied date of the room inside
// the range, or nil when the whole range is free.  Unlike IsOccupied
// the scan locks what it finds, so a caller inserting details right
// after a nil answer is serialized against concurrent writers.
func (i *Inventory) FirstConflict(ctx context.Context, tx *sql.Tx, hotelID, roomID uint64, r DateRange) (*time.Time, error) {
    d, err := i.Details.FirstConflictTx(ctx, tx, hotelID, roomID, r.FromString(), r.ToString())
    if err != nil {
        return nil, storage("occupancy scan failed", err)
    }
    return d, nil
}
