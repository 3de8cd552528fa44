package allocation

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/hotel-property-management/internal/repository"
)

// OverlapChecker surfaces room-nights of other reservations colliding
// with a reservation (or one of its details).  It is the pre-flight
// check run before promoting a tentative booking to confirmed and
// before merges.  It is read-only and side-effect free; the single
// detail variant can take a row lock to serialize against concurrent
// writers targeting the same detail.
type OverlapChecker struct {
    Details DetailStore
}

// NewOverlapChecker returns an OverlapChecker over the given detail store.
func NewOverlapChecker(details DetailStore) *OverlapChecker {
    return &OverlapChecker{Details: details}
}

// ForReservation returns every (date, room, other reservation) collision
// against any active detail of the given reservation.
func (c *OverlapChecker) ForReservation(ctx context.Context, tx *sql.Tx, hotelID uint64, reservationID string) ([]repository.Overlap, error) {
    overlaps, err := c.Details.OverlapsByReservationTx(ctx, tx, hotelID, reservationID)
    if err != nil {
        return nil, storage("overlap scan failed", err)
    }
    return overlaps, nil
}

// ForDetail returns collisions against a single detail.  With lock set
// the inspected detail is read FOR UPDATE.
func (c *OverlapChecker) ForDetail(ctx context.Context, tx *sql.Tx, hotelID, detailID uint64, lock bool) ([]repository.Overlap, error) {
    overlaps, err := c.Details.OverlapsByDetailTx(ctx, tx, hotelID, detailID, lock)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return nil, validationf("reservation detail %d not found", detailID)
        }
        return nil, storage("overlap scan failed", err)
    }
    return overlaps, nil
}
