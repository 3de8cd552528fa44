package allocation

import (
    "context"
    "database/sql"
    "sort"

    "github.com/iliyamo/hotel-property-management/internal/model"
)

// Mode selects the fulfillment policy for a room allocation.
type Mode string

const (
    // BestEffort returns the rooms it did find when fewer than the
    // requested count are free and signals the shortfall instead of
    // failing.  This preserves the long-standing tolerant behavior of
    // block reservations.
    BestEffort Mode = "BEST_EFFORT"
    // AllOrNothing fails the allocation with a shortage error when the
    // requested count cannot be met.
    AllOrNothing Mode = "ALL_OR_NOTHING"
)

// ParseMode maps a config string onto a Mode, defaulting to BestEffort.
func ParseMode(s string) Mode {
    if Mode(s) == AllOrNothing {
        return AllOrNothing
    }
    return BestEffort
}

// Shortfall reports a tolerated partial fulfillment: fewer rooms were
// free than requested, but the allocation went ahead with what it had.
type Shortfall struct {
    RoomTypeID uint64 `json:"room_type_id"`
    Requested  int    `json:"requested"`
    Allocated  int    `json:"allocated"`
}

// RoomAllocator greedily selects free rooms of a requested type across
// a date range.  Candidates are ordered by assignment priority
// ascending with nulls last, then floor ascending, then room number
// ascending.  This ordering is a contract: downstream systems depend
// on predictable room choice.
type RoomAllocator struct {
    Rooms RoomStore
}

// NewRoomAllocator returns a RoomAllocator over the given room store.
func NewRoomAllocator(rooms RoomStore) *RoomAllocator { return &RoomAllocator{Rooms: rooms} }

// Allocate picks up to count rooms of the given type that are free on
// every date of the range.  In BestEffort mode a non-nil Shortfall is
// returned alongside the rooms when fewer than count were available;
// in AllOrNothing mode the same situation is a shortage error.
func (a *RoomAllocator) Allocate(ctx context.Context, tx *sql.Tx, hotelID, roomTypeID uint64, r DateRange, count int, mode Mode) ([]model.Room, *Shortfall, error) {
    if count <= 0 {
        return nil, nil, validationf("requested room count must be positive, got %d", count)
    }
    free, err := a.Rooms.FindFreeByTypeTx(ctx, tx, hotelID, roomTypeID, r.FromString(), r.ToString())
    if err != nil {
        return nil, nil, storage("room availability scan failed", err)
    }
    SortRooms(free)
    if len(free) >= count {
        return free[:count], nil, nil
    }
    if mode == AllOrNothing {
        return nil, nil, shortagef("room type %d: requested %d rooms, only %d available", roomTypeID, count, len(free))
    }
    return free, &Shortfall{RoomTypeID: roomTypeID, Requested: count, Allocated: len(free)}, nil
}

// SortRooms orders candidates by assignment priority ascending (nulls
// last), floor ascending, room number ascending.  Exported so
// availability listings present rooms in allocation order.
func SortRooms(rooms []model.Room) {
    sort.Slice(rooms, func(i, j int) bool {
        pi, pj := rooms[i].AssignmentPriority, rooms[j].AssignmentPriority
        switch {
        case pi != nil && pj != nil && *pi != *pj:
            return *pi < *pj
        case pi != nil && pj == nil:
            return true
        case pi == nil && pj != nil:
            return false
        }
        if rooms[i].Floor != rooms[j].Floor {
            return rooms[i].Floor < rooms[j].Floor
        }
        return rooms[i].RoomNumber < rooms[j].RoomNumber
    })
}
