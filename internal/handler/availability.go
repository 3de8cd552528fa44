package handler

import (
    "encoding/json"
    "fmt"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/hotel-property-management/internal/allocation"
    "github.com/iliyamo/hotel-property-management/internal/repository"
)

// AvailabilityHandler answers read-only "which rooms are free" queries
// for the booking calendar.  Results are cached in redis for a short
// TTL because the calendar polls aggressively; with redis unavailable
// the handler just hits the database every time.
type AvailabilityHandler struct {
    Rooms *repository.RoomRepo
    Redis *redis.Client
    TTL   time.Duration
}

func NewAvailabilityHandler(rooms *repository.RoomRepo, rdb *redis.Client, ttl time.Duration) *AvailabilityHandler {
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    return &AvailabilityHandler{Rooms: rooms, Redis: rdb, TTL: ttl}
}

type availabilityRoom struct {
    ID                 uint64 `json:"id"`
    Floor              int    `json:"floor"`
    RoomNumber         string `json:"room_number"`
    AssignmentPriority *int   `json:"assignment_priority,omitempty"`
}

type availabilityResp struct {
    HotelID    uint64             `json:"hotel_id"`
    RoomTypeID uint64             `json:"room_type_id"`
    From       string             `json:"from"`
    To         string             `json:"to"`
    Rooms      []availabilityRoom `json:"rooms"`
    Count      int                `json:"count"`
}

// Get handles GET /v1/hotels/:id/availability?room_type_id=&from=&to=.
// Rooms come back in allocation order so the first entry is what a
// block request would pick.
func (h *AvailabilityHandler) Get(c echo.Context) error {
    hotelID := pathUint64(c, "id")
    if hotelID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
    }
    roomTypeID, err := strconv.ParseUint(c.QueryParam("room_type_id"), 10, 64)
    if err != nil || roomTypeID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_type_id required"})
    }
    r, err := allocation.ParseDateRange(c.QueryParam("from"), c.QueryParam("to"))
    if err != nil {
        return engineError(c, err)
    }
    r = r.ExpandSingleDay()

    ctx := c.Request().Context()
    key := fmt.Sprintf("avail:%d:%d:%s:%s", hotelID, roomTypeID, r.FromString(), r.ToString())
    if h.Redis != nil {
        if cached, err := h.Redis.Get(ctx, key).Bytes(); err == nil {
            return c.JSONBlob(http.StatusOK, cached)
        }
    }

    free, err := h.Rooms.FindFreeByType(ctx, hotelID, roomTypeID, r.FromString(), r.ToString())
    if err != nil {
        c.Logger().Errorf("availability scan failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability scan failed"})
    }
    allocation.SortRooms(free)

    resp := availabilityResp{
        HotelID:    hotelID,
        RoomTypeID: roomTypeID,
        From:       r.FromString(),
        To:         r.ToString(),
        Rooms:      make([]availabilityRoom, 0, len(free)),
        Count:      len(free),
    }
    for _, rm := range free {
        resp.Rooms = append(resp.Rooms, availabilityRoom{
            ID:                 rm.ID,
            Floor:              rm.Floor,
            RoomNumber:         rm.RoomNumber,
            AssignmentPriority: rm.AssignmentPriority,
        })
    }

    if h.Redis != nil {
        if body, err := json.Marshal(resp); err == nil {
            _ = h.Redis.Set(ctx, key, body, h.TTL).Err()
        }
    }
    return c.JSON(http.StatusOK, resp)
}
