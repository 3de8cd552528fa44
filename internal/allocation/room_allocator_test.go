package allocation

import (
    "context"
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-property-management/internal/model"
)

func testRange(t *testing.T) DateRange {
    t.Helper()
    r, err := ParseDateRange("2026-07-01", "2026-07-04")
    require.NoError(t, err)
    return r
}

func TestSortRoomsPriorityNullsLast(t *testing.T) {
    rooms := []model.Room{
        {ID: 103, Floor: 1, RoomNumber: "103"},                             // no priority
        {ID: 101, Floor: 1, RoomNumber: "101", AssignmentPriority: intp(2)},
        {ID: 102, Floor: 1, RoomNumber: "102", AssignmentPriority: intp(1)},
    }
    SortRooms(rooms)
    assert.Equal(t, uint64(102), rooms[0].ID)
    assert.Equal(t, uint64(101), rooms[1].ID)
    assert.Equal(t, uint64(103), rooms[2].ID)
}

func TestSortRoomsFloorThenNumber(t *testing.T) {
    rooms := []model.Room{
        {ID: 1, Floor: 2, RoomNumber: "201"},
        {ID: 2, Floor: 1, RoomNumber: "105"},
        {ID: 3, Floor: 1, RoomNumber: "101"},
    }
    SortRooms(rooms)
    assert.Equal(t, []uint64{3, 2, 1}, []uint64{rooms[0].ID, rooms[1].ID, rooms[2].ID})
}

func TestSortRoomsEqualPriorityFallsBack(t *testing.T) {
    rooms := []model.Room{
        {ID: 1, Floor: 3, RoomNumber: "301", AssignmentPriority: intp(5)},
        {ID: 2, Floor: 1, RoomNumber: "101", AssignmentPriority: intp(5)},
    }
    SortRooms(rooms)
    assert.Equal(t, uint64(2), rooms[0].ID)
}

func TestAllocatePicksInOrder(t *testing.T) {
    store := &fakeRoomStore{free: []model.Room{
        {ID: 30, Floor: 3, RoomNumber: "301"},
        {ID: 10, Floor: 1, RoomNumber: "101", AssignmentPriority: intp(1)},
        {ID: 20, Floor: 2, RoomNumber: "201", AssignmentPriority: intp(2)},
    }}
    a := NewRoomAllocator(store)

    rooms, short, err := a.Allocate(context.Background(), nil, 1, 7, testRange(t), 2, BestEffort)
    require.NoError(t, err)
    assert.Nil(t, short)
    require.Len(t, rooms, 2)
    assert.Equal(t, uint64(10), rooms[0].ID)
    assert.Equal(t, uint64(20), rooms[1].ID)
    assert.Equal(t, "2026-07-01", store.gotFrom)
    assert.Equal(t, "2026-07-04", store.gotTo)
}

func TestAllocateBestEffortShortfall(t *testing.T) {
    store := &fakeRoomStore{free: []model.Room{
        {ID: 10, Floor: 1, RoomNumber: "101"},
    }}
    a := NewRoomAllocator(store)

    rooms, short, err := a.Allocate(context.Background(), nil, 1, 7, testRange(t), 3, BestEffort)
    require.NoError(t, err)
    require.Len(t, rooms, 1)
    require.NotNil(t, short)
    assert.Equal(t, uint64(7), short.RoomTypeID)
    assert.Equal(t, 3, short.Requested)
    assert.Equal(t, 1, short.Allocated)
}

func TestAllocateAllOrNothingShortage(t *testing.T) {
    store := &fakeRoomStore{free: []model.Room{
        {ID: 10, Floor: 1, RoomNumber: "101"},
    }}
    a := NewRoomAllocator(store)

    rooms, short, err := a.Allocate(context.Background(), nil, 1, 7, testRange(t), 3, AllOrNothing)
    require.Error(t, err)
    assert.Equal(t, KindShortage, KindOf(err))
    assert.Nil(t, rooms)
    assert.Nil(t, short)
}

func TestAllocateRejectsNonPositiveCount(t *testing.T) {
    a := NewRoomAllocator(&fakeRoomStore{})
    _, _, err := a.Allocate(context.Background(), nil, 1, 7, testRange(t), 0, BestEffort)
    require.Error(t, err)
    assert.Equal(t, KindValidation, KindOf(err))
}

func TestAllocateWrapsStoreFailure(t *testing.T) {
    cause := errors.New("connection lost")
    a := NewRoomAllocator(&fakeRoomStore{err: cause})
    _, _, err := a.Allocate(context.Background(), nil, 1, 7, testRange(t), 1, BestEffort)
    require.Error(t, err)
    assert.Equal(t, KindStorage, KindOf(err))
    assert.ErrorIs(t, err, cause)
}

func TestParseMode(t *testing.T) {
    assert.Equal(t, AllOrNothing, ParseMode("ALL_OR_NOTHING"))
    assert.Equal(t, BestEffort, ParseMode("BEST_EFFORT"))
    assert.Equal(t, BestEffort, ParseMode(""))
    assert.Equal(t, BestEffort, ParseMode("nonsense"))
}
