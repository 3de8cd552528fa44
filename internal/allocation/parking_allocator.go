package allocation

import (
    "context"
    "database/sql"

    "github.com/iliyamo/hotel-property-management/internal/model"
)

// ParkingAllocator greedily selects free parking spots matching a
// vehicle category's capacity requirement across a date range.  Unlike
// room allocation there is no tolerant mode: a shortfall is always a
// hard error that aborts the enclosing transaction.
type ParkingAllocator struct {
    Parking ParkingStore
}

// NewParkingAllocator returns a ParkingAllocator over the given store.
func NewParkingAllocator(parking ParkingStore) *ParkingAllocator {
    return &ParkingAllocator{Parking: parking}
}

// Allocate resolves the category's capacity units and picks count free
// spots rated for at least that many units, in spot-id order.  A
// category resolving to zero units is unconfigured: the allocation is
// skipped silently and returns no spots and no error.  Fewer free
// spots than requested is a shortage error.
func (a *ParkingAllocator) Allocate(ctx context.Context, tx *sql.Tx, hotelID, categoryID uint64, r DateRange, count int) ([]model.ParkingSpot, error) {
    if count <= 0 {
        return nil, validationf("requested spot count must be positive, got %d", count)
    }
    units, err := a.Parking.CapacityUnitsTx(ctx, tx, categoryID)
    if err != nil {
        return nil, storage("vehicle category lookup failed", err)
    }
    if units <= 0 {
        // Unconfigured category: nothing to allocate, not an error.
        return nil, nil
    }
    free, err := a.Parking.FindFreeSpotsTx(ctx, tx, hotelID, units, r.FromString(), r.ToString())
    if err != nil {
        return nil, storage("parking availability scan failed", err)
    }
    if len(free) < count {
        return nil, shortagef("vehicle category %d: requested %d spots, only %d available", categoryID, count, len(free))
    }
    return free[:count], nil
}
