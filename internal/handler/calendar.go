package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-property-management/internal/allocation"
    "github.com/iliyamo/hotel-property-management/internal/model"
    "github.com/iliyamo/hotel-property-management/internal/queue"
    queue_publisher "github.com/iliyamo/hotel-property-management/internal/service"
)

// CalendarHandler exposes bulk blocking from the calendar view: a set
// of rooms (or every room of a hotel, or every room everywhere) over a
// date range, all-or-nothing.
type CalendarHandler struct {
    Workflow *allocation.CalendarWorkflow
}

func NewCalendarHandler(w *allocation.CalendarWorkflow) *CalendarHandler {
    return &CalendarHandler{Workflow: w}
}

type calendarReq struct {
    HotelID        *uint64  `json:"hotel_id"`
    RoomIDs        []uint64 `json:"room_ids"`
    StartDate      string   `json:"start_date"`
    EndDate        string   `json:"end_date"`
    NumberOfPeople int      `json:"number_of_people"`
    Comment        string   `json:"comment"`
    BlockType      string   `json:"block_type"` // temp | permanent
}

// Block handles POST /v1/calendar/blocks.  A single occupied (room,
// date) in scope aborts the whole request with success=false and a
// message naming the room and date, so the calendar UI can surface it
// verbatim.
func (h *CalendarHandler) Block(c echo.Context) error {
    var req calendarReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    r, err := allocation.ParseDateRange(req.StartDate, req.EndDate)
    if err != nil {
        return engineError(c, err)
    }
    kind := strings.ToUpper(strings.TrimSpace(req.BlockType))
    if kind == "" {
        kind = model.BlockKindTemp
    }

    result, err := h.Workflow.Block(c.Request().Context(), allocation.CalendarInput{
        HotelID:        req.HotelID,
        RoomIDs:        req.RoomIDs,
        Range:          r,
        NumberOfPeople: req.NumberOfPeople,
        Comment:        req.Comment,
        Kind:           kind,
        ActorID:        actorID(c),
    })
    if err != nil {
        if allocation.KindOf(err) == allocation.KindConflict {
            msg := "conflict"
            var ae *allocation.Error
            if errors.As(err, &ae) {
                msg = ae.Message
            }
            return c.JSON(http.StatusConflict, echo.Map{"success": false, "message": msg})
        }
        return engineError(c, err)
    }

    now := time.Now().UTC().Format(time.RFC3339)
    expanded := r.ExpandSingleDay()
    uid := actorID(c)
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        for _, b := range result.Blocks {
            _ = queue_publisher.PublishBlockCreated(ctx, queue.BlockCreatedEvent{
                ReservationID: b.ReservationID,
                HotelID:       b.HotelID,
                BlockKind:     kind,
                CheckIn:       expanded.FromString(),
                CheckOut:      expanded.ToString(),
                RoomIDs:       []uint64{b.RoomID},
                CreatedBy:     uid,
                CreatedAt:     now,
            })
        }
    }()

    return c.JSON(http.StatusOK, echo.Map{
        "success":       true,
        "rooms_blocked": result.RoomsBlocked,
        "blocks":        result.Blocks,
    })
}
