package allocation

import (
    "context"
    "database/sql"
    "errors"

    "github.com/google/uuid"

    "github.com/iliyamo/hotel-property-management/internal/model"
    "github.com/iliyamo/hotel-property-management/internal/repository"
)

// CalendarInput describes a bulk blocking request from the calendar
// view.  HotelID nil means every hotel; an empty RoomIDs list means
// every room of the target hotel(s).  A range whose start equals its
// end is widened to exactly one night.
type CalendarInput struct {
    HotelID        *uint64
    RoomIDs        []uint64
    Range          DateRange
    NumberOfPeople int
    Comment        string
    Kind           string // model.BlockKindTemp or model.BlockKindPermanent
    ActorID        uint64
}

// BlockRef identifies one created block reservation and the room it
// covers.
type BlockRef struct {
    ReservationID string `json:"reservation_id"`
    HotelID       uint64 `json:"hotel_id"`
    RoomID        uint64 `json:"room_id"`
}

// CalendarResult reports the reservations created, one per (hotel,
// room) pair in scope.
type CalendarResult struct {
    Blocks       []BlockRef `json:"blocks"`
    RoomsBlocked int        `json:"rooms_blocked"`
}

// CalendarWorkflow bulk-creates block reservations for a room set
// across a date range with all-or-nothing semantics: if any single
// (room, date) in scope is already occupied, nothing is written.  This
// is deliberately stricter than BlockWorkflow's tolerant room policy.
type CalendarWorkflow struct {
    DB           *sql.DB
    Hotels       HotelStore
    Rooms        RoomStore
    Details      DetailStore
    Reservations ReservationStore
    Inventory    *Inventory
    Defaults     Defaults
}

// Block runs the workflow.  The first conflicting (room, date) aborts
// the whole operation with a conflict error naming the date.
func (w *CalendarWorkflow) Block(ctx context.Context, in CalendarInput) (*CalendarResult, error) {
    if in.Kind != model.BlockKindTemp && in.Kind != model.BlockKindPermanent {
        return nil, validationf("unknown block kind %q", in.Kind)
    }
    if len(in.RoomIDs) > 0 && in.HotelID == nil {
        return nil, validationf("explicit room list requires a hotel id")
    }
    r := in.Range.ExpandSingleDay()
    people := in.NumberOfPeople
    if people <= 0 {
        people = w.Defaults.PeopleCount
    }
    clientID := w.Defaults.TempBlockClientID
    if in.Kind == model.BlockKindPermanent {
        clientID = w.Defaults.PermanentBlockClientID
    }

    tx, err := w.DB.BeginTx(ctx, nil)
    if err != nil {
        return nil, storage("begin transaction", err)
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    scope, err := w.resolveScope(ctx, tx, in)
    if err != nil {
        return nil, err
    }

    result := &CalendarResult{}
    for _, target := range scope {
        // All-or-nothing: any occupied date in scope aborts everything.
        conflict, err := w.Inventory.FirstConflict(ctx, tx, target.hotelID, target.roomID, r)
        if err != nil {
            return nil, err
        }
        if conflict != nil {
            return nil, conflictf("room %d is already booked on %s", target.roomID, conflict.Format(DateLayout))
        }
        res := &model.Reservation{
            ID:             uuid.NewString(),
            HotelID:        target.hotelID,
            ClientID:       clientID,
            CheckIn:        r.From,
            CheckOut:       r.To,
            NumberOfPeople: people,
            Status:         model.StatusBlock,
            Type:           model.TypeDefault,
            BlockKind:      &in.Kind,
            Comment:        in.Comment,
            CreatedBy:      in.ActorID,
        }
        if err := w.Reservations.CreateTx(ctx, tx, res); err != nil {
            return nil, storage("create calendar block", err)
        }
        details := make([]repository.DetailRecord, 0, r.Nights())
        for _, d := range r.Dates() {
            details = append(details, repository.DetailRecord{
                HotelID:        target.hotelID,
                ReservationID:  res.ID,
                RoomID:         target.roomID,
                Date:           d.Format(DateLayout),
                NumberOfPeople: people,
                Billable:       false,
            })
        }
        if err := w.Details.CreateBulkTx(ctx, tx, details); err != nil {
            if errors.Is(err, repository.ErrConflict) {
                return nil, conflictf("room %d is already booked inside %s..%s", target.roomID, r.FromString(), r.ToString())
            }
            return nil, storage("insert calendar block details", err)
        }
        result.Blocks = append(result.Blocks, BlockRef{
            ReservationID: res.ID,
            HotelID:       target.hotelID,
            RoomID:        target.roomID,
        })
        result.RoomsBlocked++
    }

    if result.RoomsBlocked == 0 {
        return nil, validationf("no rooms in scope")
    }
    if err := tx.Commit(); err != nil {
        return nil, storage("commit calendar blocks", err)
    }
    committed = true
    return result, nil
}

type roomTarget struct {
    hotelID uint64
    roomID  uint64
}

// resolveScope expands the (hotel, rooms) input into concrete
// (hotel, room) pairs.
func (w *CalendarWorkflow) resolveScope(ctx context.Context, tx *sql.Tx, in CalendarInput) ([]roomTarget, error) {
    var hotelIDs []uint64
    if in.HotelID != nil {
        ok, err := w.Hotels.ExistsTx(ctx, tx, *in.HotelID)
        if err != nil {
            return nil, storage("hotel lookup failed", err)
        }
        if !ok {
            return nil, validationf("hotel %d not found", *in.HotelID)
        }
        hotelIDs = []uint64{*in.HotelID}
    } else {
        ids, err := w.Hotels.IDsTx(ctx, tx)
        if err != nil {
            return nil, storage("hotel scan failed", err)
        }
        hotelIDs = ids
    }

    var scope []roomTarget
    for _, hid := range hotelIDs {
        roomIDs := in.RoomIDs
        if len(roomIDs) == 0 {
            ids, err := w.Rooms.IDsByHotelTx(ctx, tx, hid)
            if err != nil {
                return nil, storage("room scan failed", err)
            }
            roomIDs = ids
        }
        for _, rid := range roomIDs {
            scope = append(scope, roomTarget{hotelID: hid, roomID: rid})
        }
    }
    return scope, nil
}
