package allocation

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-property-management/internal/model"
)

func TestCalendarBlockConflictOnLaterRoomAbortsAll(t *testing.T) {
    db, mock := newMockDB(t)
    mock.ExpectBegin()
    mock.ExpectRollback()

    hit := day("2026-06-02")
    details := &fakeDetailStore{
        firstConflict: func(hotelID, roomID uint64, from, to string) (*time.Time, error) {
            if roomID == 22 {
                return &hit, nil
            }
            return nil, nil
        },
    }
    reservations := &fakeReservationStore{}
    hotelID := uint64(5)
    w := &CalendarWorkflow{
        DB:           db,
        Hotels:       &fakeHotelStore{exists: true},
        Rooms:        &fakeRoomStore{},
        Details:      details,
        Reservations: reservations,
        Inventory:    NewInventory(details),
        Defaults:     Defaults{TempBlockClientID: 1, PermanentBlockClientID: 2, PeopleCount: 1},
    }

    _, err := w.Block(context.Background(), CalendarInput{
        HotelID: &hotelID,
        RoomIDs: []uint64{21, 22},
        Range:   mustRange(t, "2026-06-01", "2026-06-03"),
        Kind:    model.BlockKindTemp,
        ActorID: 9,
    })
    require.Error(t, err)
    assert.Equal(t, KindConflict, KindOf(err))
    assert.Contains(t, err.Error(), "2026-06-02")

    // Room 21 had already been written inside the transaction when the
    // conflict on room 22 surfaced; the rollback discards it.
    assert.Len(t, reservations.created, 1)
    assert.Len(t, details.created, 1)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalendarBlockCreatesOneBlockPerRoom(t *testing.T) {
    db, mock := newMockDB(t)
    mock.ExpectBegin()
    mock.ExpectCommit()

    details := &fakeDetailStore{}
    reservations := &fakeReservationStore{}
    hotelID := uint64(5)
    w := &CalendarWorkflow{
        DB:           db,
        Hotels:       &fakeHotelStore{exists: true},
        Rooms:        &fakeRoomStore{},
        Details:      details,
        Reservations: reservations,
        Inventory:    NewInventory(details),
        Defaults:     Defaults{TempBlockClientID: 1, PermanentBlockClientID: 2, PeopleCount: 1},
    }

    result, err := w.Block(context.Background(), CalendarInput{
        HotelID: &hotelID,
        RoomIDs: []uint64{21, 22},
        Range:   mustRange(t, "2026-06-01", "2026-06-03"),
        Kind:    model.BlockKindPermanent,
        ActorID: 9,
    })
    require.NoError(t, err)
    assert.Equal(t, 2, result.RoomsBlocked)
    require.Len(t, result.Blocks, 2)
    assert.Equal(t, uint64(21), result.Blocks[0].RoomID)
    assert.Equal(t, uint64(22), result.Blocks[1].RoomID)

    require.Len(t, reservations.created, 2)
    assert.Equal(t, uint64(2), reservations.created[0].ClientID) // permanent sentinel
    assert.Len(t, details.created, 2)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalendarBlockRejectsUnknownKind(t *testing.T) {
    db, mock := newMockDB(t)
    w := &CalendarWorkflow{DB: db}

    _, err := w.Block(context.Background(), CalendarInput{Kind: "WEEKLY"})
    require.Error(t, err)
    assert.Equal(t, KindValidation, KindOf(err))
    assert.NoError(t, mock.ExpectationsWereMet())
}
