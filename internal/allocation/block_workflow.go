package allocation

import (
    "context"
    "database/sql"
    "errors"

    "github.com/google/uuid"

    "github.com/iliyamo/hotel-property-management/internal/model"
    "github.com/iliyamo/hotel-property-management/internal/repository"
)

// Defaults carries the configured fallbacks the workflows apply when a
// request leaves a value unset.  The block booker sentinels identify
// the synthetic clients legacy reports key on; new rows additionally
// carry an explicit block_kind column.
type Defaults struct {
    TempBlockClientID      uint64 // booker id tagged on temp blocks
    PermanentBlockClientID uint64 // booker id tagged on permanent blocks
    PeopleCount            int    // people count when a request passes zero
    ParkingUnitPrice       int    // nightly spot price when not priced
    RoomMode               Mode   // fulfillment policy for room requests
}

// RoomRequest asks for count rooms of one type.
type RoomRequest struct {
    RoomTypeID uint64 `json:"room_type_id"`
    Count      int    `json:"count"`
}

// ParkingRequest asks for count spots fitting one vehicle category.
type ParkingRequest struct {
    VehicleCategoryID uint64 `json:"vehicle_category_id"`
    Count             int    `json:"count"`
}

// BlockInput is the full request for a block reservation: capacity
// held without a real guest, spanning [Range.From, Range.To).
type BlockInput struct {
    HotelID        uint64
    Range          DateRange
    Rooms          []RoomRequest
    Parking        []ParkingRequest
    Comment        string
    NumberOfPeople int
    ActorID        uint64
}

// BlockResult reports what a committed block reservation holds.  A
// room shortfall in best-effort mode does not fail the transaction; it
// is surfaced here so callers can warn.
type BlockResult struct {
    ReservationID string      `json:"reservation_id"`
    RoomIDs       []uint64    `json:"room_ids"`
    SpotIDs       []uint64    `json:"spot_ids"`
    Shortfalls    []Shortfall `json:"shortfalls,omitempty"`
}

// BlockWorkflow orchestrates a multi-room-type, multi-parking block as
// one atomic unit of work.  Exactly one reservation row with status
// BLOCK is created; all allocated room-nights and parking assignments
// reference it.  Any error rolls back everything, including rooms
// already allocated before a later step failed.
type BlockWorkflow struct {
    DB           *sql.DB
    Hotels       HotelStore
    Reservations ReservationStore
    Details      DetailStore
    Rooms        *RoomAllocator
    Parking      *ParkingAllocator
    ParkingStore ParkingStore
    Defaults     Defaults
}

// Create runs the workflow.  On success the transaction is committed
// and the result lists the blocked room and spot ids.
func (w *BlockWorkflow) Create(ctx context.Context, in BlockInput) (*BlockResult, error) {
    if in.HotelID == 0 {
        return nil, validationf("hotel id is required")
    }
    if in.Range.Nights() < 1 {
        return nil, validationf("block must span at least one night")
    }
    if len(in.Rooms) == 0 && len(in.Parking) == 0 {
        return nil, validationf("nothing requested")
    }
    people := in.NumberOfPeople
    if people <= 0 {
        people = w.Defaults.PeopleCount
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

    ok, err := w.Hotels.ExistsTx(ctx, tx, in.HotelID)
    if err != nil {
        return nil, storage("hotel lookup failed", err)
    }
    if !ok {
        return nil, validationf("hotel %d not found", in.HotelID)
    }

    kind := model.BlockKindTemp
    res := &model.Reservation{
        ID:             uuid.NewString(),
        HotelID:        in.HotelID,
        ClientID:       w.Defaults.TempBlockClientID,
        CheckIn:        in.Range.From,
        CheckOut:       in.Range.To,
        NumberOfPeople: people,
        Status:         model.StatusBlock,
        Type:           model.TypeDefault,
        BlockKind:      &kind,
        Comment:        in.Comment,
        CreatedBy:      in.ActorID,
    }
    if err := w.Reservations.CreateTx(ctx, tx, res); err != nil {
        return nil, storage("create block reservation", err)
    }

    result := &BlockResult{ReservationID: res.ID}
    for _, req := range in.Rooms {
        rooms, short, err := w.Rooms.Allocate(ctx, tx, in.HotelID, req.RoomTypeID, in.Range, req.Count, w.Defaults.RoomMode)
        if err != nil {
            return nil, err
        }
        if short != nil {
            result.Shortfalls = append(result.Shortfalls, *short)
        }
        var details []repository.DetailRecord
        for _, rm := range rooms {
            result.RoomIDs = append(result.RoomIDs, rm.ID)
            for _, d := range in.Range.Dates() {
                details = append(details, repository.DetailRecord{
                    HotelID:        in.HotelID,
                    ReservationID:  res.ID,
                    RoomID:         rm.ID,
                    Date:           d.Format(DateLayout),
                    NumberOfPeople: people,
                    Billable:       false,
                })
            }
        }
        if err := w.Details.CreateBulkTx(ctx, tx, details); err != nil {
            if errors.Is(err, repository.ErrConflict) {
                return nil, conflictf("room occupancy changed while allocating")
            }
            return nil, storage("insert block details", err)
        }
    }

    for _, req := range in.Parking {
        spots, err := w.Parking.Allocate(ctx, tx, in.HotelID, req.VehicleCategoryID, in.Range, req.Count)
        if err != nil {
            return nil, err
        }
        assignments := make([]repository.AssignmentRecord, 0, len(spots))
        for _, s := range spots {
            result.SpotIDs = append(result.SpotIDs, s.ID)
            assignments = append(assignments, repository.AssignmentRecord{
                HotelID:       in.HotelID,
                ReservationID: res.ID,
                SpotID:        s.ID,
                FromDate:      in.Range.FromString(),
                ToDate:        in.Range.ToString(),
                UnitPrice:     w.Defaults.ParkingUnitPrice,
            })
        }
        if err := w.ParkingStore.CreateAssignmentsBulkTx(ctx, tx, assignments); err != nil {
            return nil, storage("insert parking assignments", err)
        }
    }

    if err := tx.Commit(); err != nil {
        return nil, storage("commit block reservation", err)
    }
    committed = true
    return result, nil
}
