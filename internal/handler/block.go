package handler

import (
    "context"
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-property-management/internal/allocation"
    "github.com/iliyamo/hotel-property-management/internal/model"
    "github.com/iliyamo/hotel-property-management/internal/queue"
    queue_publisher "github.com/iliyamo/hotel-property-management/internal/service"
)

// BlockHandler exposes ad-hoc block reservations: capacity held
// without a real guest, spanning several room types and parking.
type BlockHandler struct {
    Workflow *allocation.BlockWorkflow
}

func NewBlockHandler(w *allocation.BlockWorkflow) *BlockHandler {
    return &BlockHandler{Workflow: w}
}

type blockReq struct {
    CheckIn        string                      `json:"check_in"`
    CheckOut       string                      `json:"check_out"`
    Rooms          []allocation.RoomRequest    `json:"rooms"`
    Parking        []allocation.ParkingRequest `json:"parking"`
    NumberOfPeople int                         `json:"number_of_people"`
    Comment        string                      `json:"comment"`
}

// Create handles POST /v1/hotels/:id/blocks.  A room shortfall in
// best-effort mode commits anyway and is reported back; any other
// failure rolls back the whole block.
func (h *BlockHandler) Create(c echo.Context) error {
    hotelID := pathUint64(c, "id")
    if hotelID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
    }
    var req blockReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    r, err := allocation.ParseDateRange(req.CheckIn, req.CheckOut)
    if err != nil {
        return engineError(c, err)
    }

    result, err := h.Workflow.Create(c.Request().Context(), allocation.BlockInput{
        HotelID:        hotelID,
        Range:          r,
        Rooms:          req.Rooms,
        Parking:        req.Parking,
        Comment:        req.Comment,
        NumberOfPeople: req.NumberOfPeople,
        ActorID:        actorID(c),
    })
    if err != nil {
        return engineError(c, err)
    }

    // Fire-and-forget: the block is committed either way.
    ev := queue.BlockCreatedEvent{
        ReservationID: result.ReservationID,
        HotelID:       hotelID,
        BlockKind:     model.BlockKindTemp,
        CheckIn:       r.FromString(),
        CheckOut:      r.ToString(),
        RoomIDs:       result.RoomIDs,
        SpotIDs:       result.SpotIDs,
        Warning:       shortfallWarning(result.Shortfalls),
        CreatedBy:     actorID(c),
        CreatedAt:     time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = queue_publisher.PublishBlockCreated(ctx, ev)
    }()

    return c.JSON(http.StatusCreated, result)
}

// shortfallWarning condenses best-effort room shortfalls into one
// human-readable line for the block-created event; empty when every
// request was fully met.
func shortfallWarning(shortfalls []allocation.Shortfall) string {
    if len(shortfalls) == 0 {
        return ""
    }
    parts := make([]string, len(shortfalls))
    for i, s := range shortfalls {
        parts[i] = fmt.Sprintf("room type %d: allocated %d of %d", s.RoomTypeID, s.Allocated, s.Requested)
    }
    return strings.Join(parts, "; ")
}
