package allocation

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-property-management/internal/model"
)

func mustRange(t *testing.T, from, to string) DateRange {
    t.Helper()
    r, err := ParseDateRange(from, to)
    require.NoError(t, err)
    return r
}

func TestBlockCreateCommitsRoomsAndParking(t *testing.T) {
    db, mock := newMockDB(t)
    mock.ExpectBegin()
    mock.ExpectCommit()

    rooms := &fakeRoomStore{free: []model.Room{{ID: 11}, {ID: 12}}}
    parking := &fakeParkingStore{units: 1, spots: []model.ParkingSpot{{ID: 31}}}
    details := &fakeDetailStore{}
    reservations := &fakeReservationStore{}
    w := &BlockWorkflow{
        DB:           db,
        Hotels:       &fakeHotelStore{exists: true},
        Reservations: reservations,
        Details:      details,
        Rooms:        NewRoomAllocator(rooms),
        Parking:      NewParkingAllocator(parking),
        ParkingStore: parking,
        Defaults:     Defaults{TempBlockClientID: 1, PeopleCount: 1, RoomMode: BestEffort},
    }

    result, err := w.Create(context.Background(), BlockInput{
        HotelID: 5,
        Range:   mustRange(t, "2026-04-01", "2026-04-03"),
        Rooms:   []RoomRequest{{RoomTypeID: 2, Count: 2}},
        Parking: []ParkingRequest{{VehicleCategoryID: 4, Count: 1}},
        ActorID: 9,
    })
    require.NoError(t, err)
    assert.Equal(t, []uint64{11, 12}, result.RoomIDs)
    assert.Equal(t, []uint64{31}, result.SpotIDs)
    assert.Empty(t, result.Shortfalls)

    require.Len(t, reservations.created, 1)
    assert.Equal(t, model.StatusBlock, reservations.created[0].Status)
    assert.Equal(t, uint64(1), reservations.created[0].ClientID)
    require.Len(t, details.created, 1)
    assert.Len(t, details.created[0], 4) // 2 rooms x 2 nights
    require.Len(t, parking.assignments, 1)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockCreateParkingShortageRollsBackRooms(t *testing.T) {
    db, mock := newMockDB(t)
    mock.ExpectBegin()
    mock.ExpectRollback()

    rooms := &fakeRoomStore{free: []model.Room{{ID: 11}}}
    // Category is configured but no spot is free for the range.
    parking := &fakeParkingStore{units: 1}
    details := &fakeDetailStore{}
    reservations := &fakeReservationStore{}
    w := &BlockWorkflow{
        DB:           db,
        Hotels:       &fakeHotelStore{exists: true},
        Reservations: reservations,
        Details:      details,
        Rooms:        NewRoomAllocator(rooms),
        Parking:      NewParkingAllocator(parking),
        ParkingStore: parking,
        Defaults:     Defaults{TempBlockClientID: 1, PeopleCount: 1, RoomMode: BestEffort},
    }

    _, err := w.Create(context.Background(), BlockInput{
        HotelID: 5,
        Range:   mustRange(t, "2026-04-01", "2026-04-03"),
        Rooms:   []RoomRequest{{RoomTypeID: 2, Count: 1}},
        Parking: []ParkingRequest{{VehicleCategoryID: 4, Count: 2}},
        ActorID: 9,
    })
    require.Error(t, err)
    assert.Equal(t, KindShortage, KindOf(err))

    // The room details were written inside the transaction before the
    // parking step failed; the rollback is what discards them.
    require.Len(t, details.created, 1)
    assert.Empty(t, parking.assignments)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlockCreateValidatesBeforeTouchingStorage(t *testing.T) {
    db, mock := newMockDB(t)
    w := &BlockWorkflow{DB: db}

    _, err := w.Create(context.Background(), BlockInput{
        HotelID: 5,
        Range:   mustRange(t, "2026-04-01", "2026-04-03"),
    })
    require.Error(t, err)
    assert.Equal(t, KindValidation, KindOf(err))
    assert.NoError(t, mock.ExpectationsWereMet())
}
