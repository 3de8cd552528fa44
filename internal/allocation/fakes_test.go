package allocation

import (
    "context"
    "database/sql"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"

    "github.com/iliyamo/hotel-property-management/internal/model"
    "github.com/iliyamo/hotel-property-management/internal/repository"
)

// Hand-written fakes for the store interfaces.  The engine never
// dereferences the *sql.Tx it is handed, so allocator tests pass nil;
// workflow tests hand it a sqlmock transaction so begin/commit/
// rollback run against real database/sql plumbing.

type fakeHotelStore struct {
    exists bool
    ids    []uint64
}

func (f *fakeHotelStore) ExistsTx(ctx context.Context, tx *sql.Tx, hotelID uint64) (bool, error) {
    return f.exists, nil
}

func (f *fakeHotelStore) IDsTx(ctx context.Context, tx *sql.Tx) ([]uint64, error) {
    return f.ids, nil
}

// fakeReservationStore records every mutation so tests can assert what
// a workflow wrote, or that it wrote nothing.
type fakeReservationStore struct {
    byID        map[string]*model.Reservation
    created     []*model.Reservation
    deleted     []string
    spanUpdates int
    reassigned  int
}

func (f *fakeReservationStore) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
    f.created = append(f.created, res)
    return nil
}

func (f *fakeReservationStore) GetTx(ctx context.Context, tx *sql.Tx, id string) (*model.Reservation, error) {
    if res, ok := f.byID[id]; ok {
        return res, nil
    }
    return nil, repository.ErrNotFound
}

func (f *fakeReservationStore) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
    return f.GetTx(ctx, nil, id)
}

func (f *fakeReservationStore) UpdateSpanTx(ctx context.Context, tx *sql.Tx, id string, checkIn, checkOut time.Time, people int) error {
    f.spanUpdates++
    return nil
}

func (f *fakeReservationStore) ReassignPaymentsTx(ctx context.Context, tx *sql.Tx, sourceID, targetID string) error {
    f.reassigned++
    return nil
}

func (f *fakeReservationStore) DeleteTx(ctx context.Context, tx *sql.Tx, id string) error {
    f.deleted = append(f.deleted, id)
    return nil
}

type fakeRoomStore struct {
    free    []model.Room
    err     error
    gotFrom string
    gotTo   string
}

func (f *fakeRoomStore) FindFreeByTypeTx(ctx context.Context, tx *sql.Tx, hotelID, roomTypeID uint64, from, to string) ([]model.Room, error) {
    f.gotFrom, f.gotTo = from, to
    return f.free, f.err
}

func (f *fakeRoomStore) IDsByHotelTx(ctx context.Context, tx *sql.Tx, hotelID uint64) ([]uint64, error) {
    return nil, nil
}

type fakeParkingStore struct {
    units       int
    unitsErr    error
    spots       []model.ParkingSpot
    spotsErr    error
    gotUnits    int
    assignments []repository.AssignmentRecord
}

func (f *fakeParkingStore) CapacityUnitsTx(ctx context.Context, tx *sql.Tx, categoryID uint64) (int, error) {
    return f.units, f.unitsErr
}

func (f *fakeParkingStore) FindFreeSpotsTx(ctx context.Context, tx *sql.Tx, hotelID uint64, units int, from, to string) ([]model.ParkingSpot, error) {
    f.gotUnits = units
    return f.spots, f.spotsErr
}

func (f *fakeParkingStore) CreateAssignmentsBulkTx(ctx context.Context, tx *sql.Tx, assignments []repository.AssignmentRecord) error {
    f.assignments = append(f.assignments, assignments...)
    return nil
}

// fakeDetailStore lets each test override only the calls it cares
// about; everything else returns zero values.  Bulk inserts and
// reassignments are recorded for workflow assertions.
type fakeDetailStore struct {
    existsActive     func(hotelID, roomID uint64, date string) (bool, error)
    firstConflict    func(hotelID, roomID uint64, from, to string) (*time.Time, error)
    overlapsByRes    func(hotelID uint64, reservationID string) ([]repository.Overlap, error)
    overlapsByDetail func(hotelID, detailID uint64, lock bool) ([]repository.Overlap, error)
    activeSpan       func(reservationID string) (repository.Span, error)
    spansByClient    func(hotelID, clientID uint64, excludeID string) ([]repository.ReservationSpan, error)

    created    [][]repository.DetailRecord
    reassigned int
}

func (f *fakeDetailStore) CreateBulkTx(ctx context.Context, tx *sql.Tx, details []repository.DetailRecord) error {
    f.created = append(f.created, details)
    return nil
}

func (f *fakeDetailStore) ExistsActiveTx(ctx context.Context, tx *sql.Tx, hotelID, roomID uint64, date string) (bool, error) {
    if f.existsActive == nil {
        return false, nil
    }
    return f.existsActive(hotelID, roomID, date)
}

func (f *fakeDetailStore) FirstConflictTx(ctx context.Context, tx *sql.Tx, hotelID, roomID uint64, from, to string) (*time.Time, error) {
    if f.firstConflict == nil {
        return nil, nil
    }
    return f.firstConflict(hotelID, roomID, from, to)
}

func (f *fakeDetailStore) ActiveSpanTx(ctx context.Context, tx *sql.Tx, reservationID string) (repository.Span, error) {
    if f.activeSpan == nil {
        return repository.Span{}, nil
    }
    return f.activeSpan(reservationID)
}

func (f *fakeDetailStore) OverlapsByReservationTx(ctx context.Context, tx *sql.Tx, hotelID uint64, reservationID string) ([]repository.Overlap, error) {
    if f.overlapsByRes == nil {
        return nil, nil
    }
    return f.overlapsByRes(hotelID, reservationID)
}

func (f *fakeDetailStore) OverlapsByDetailTx(ctx context.Context, tx *sql.Tx, hotelID, detailID uint64, lock bool) ([]repository.Overlap, error) {
    if f.overlapsByDetail == nil {
        return nil, nil
    }
    return f.overlapsByDetail(hotelID, detailID, lock)
}

func (f *fakeDetailStore) ReassignTx(ctx context.Context, tx *sql.Tx, sourceID, targetID string) error {
    f.reassigned++
    return nil
}

func (f *fakeDetailStore) SpansByClientTx(ctx context.Context, tx *sql.Tx, hotelID, clientID uint64, excludeID string) ([]repository.ReservationSpan, error) {
    if f.spansByClient == nil {
        return nil, nil
    }
    return f.spansByClient(hotelID, clientID, excludeID)
}

// newMockDB returns a database whose transaction lifecycle is scripted
// through sqlmock.  Workflow tests use it to prove begin/commit/
// rollback behavior while the fake stores absorb all data access.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock: %v", err)
    }
    t.Cleanup(func() { _ = db.Close() })
    return db, mock
}

// day parses a YYYY-MM-DD literal for test data.
func day(s string) time.Time {
    t, err := time.Parse(DateLayout, s)
    if err != nil {
        panic(err)
    }
    return t
}

func intp(n int) *int { return &n }
