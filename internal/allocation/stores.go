package allocation

import (
    "context"
    "database/sql"
    "time"

    "github.com/iliyamo/hotel-property-management/internal/model"
    "github.com/iliyamo/hotel-property-management/internal/repository"
)

// The engine talks to storage through these narrow interfaces rather
// than the concrete repositories so the pure allocation logic can be
// exercised in tests with fake stores.  The repository types satisfy
// them directly.

// HotelStore resolves hotel scope for calendar blocking.
type HotelStore interface {
    ExistsTx(ctx context.Context, tx *sql.Tx, hotelID uint64) (bool, error)
    IDsTx(ctx context.Context, tx *sql.Tx) ([]uint64, error)
}

// RoomStore answers room availability questions.
type RoomStore interface {
    FindFreeByTypeTx(ctx context.Context, tx *sql.Tx, hotelID, roomTypeID uint64, from, to string) ([]model.Room, error)
    IDsByHotelTx(ctx context.Context, tx *sql.Tx, hotelID uint64) ([]uint64, error)
}

// DetailStore reads and writes room-nights.
type DetailStore interface {
    CreateBulkTx(ctx context.Context, tx *sql.Tx, details []repository.DetailRecord) error
    ExistsActiveTx(ctx context.Context, tx *sql.Tx, hotelID, roomID uint64, date string) (bool, error)
    FirstConflictTx(ctx context.Context, tx *sql.Tx, hotelID, roomID uint64, from, to string) (*time.Time, error)
    ActiveSpanTx(ctx context.Context, tx *sql.Tx, reservationID string) (repository.Span, error)
    OverlapsByReservationTx(ctx context.Context, tx *sql.Tx, hotelID uint64, reservationID string) ([]repository.Overlap, error)
    OverlapsByDetailTx(ctx context.Context, tx *sql.Tx, hotelID, detailID uint64, lock bool) ([]repository.Overlap, error)
    ReassignTx(ctx context.Context, tx *sql.Tx, sourceID, targetID string) error
    SpansByClientTx(ctx context.Context, tx *sql.Tx, hotelID, clientID uint64, excludeID string) ([]repository.ReservationSpan, error)
}

// ReservationStore reads and writes reservation rows.
type ReservationStore interface {
    CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error
    GetTx(ctx context.Context, tx *sql.Tx, id string) (*model.Reservation, error)
    GetByID(ctx context.Context, id string) (*model.Reservation, error)
    UpdateSpanTx(ctx context.Context, tx *sql.Tx, id string, checkIn, checkOut time.Time, people int) error
    ReassignPaymentsTx(ctx context.Context, tx *sql.Tx, sourceID, targetID string) error
    DeleteTx(ctx context.Context, tx *sql.Tx, id string) error
}

// ParkingStore answers parking availability questions and persists
// assignments.
type ParkingStore interface {
    CapacityUnitsTx(ctx context.Context, tx *sql.Tx, categoryID uint64) (int, error)
    FindFreeSpotsTx(ctx context.Context, tx *sql.Tx, hotelID uint64, units int, from, to string) ([]model.ParkingSpot, error)
    CreateAssignmentsBulkTx(ctx context.Context, tx *sql.Tx, assignments []repository.AssignmentRecord) error
}
