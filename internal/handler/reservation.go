package handler

import (
    "context"
    "database/sql"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-property-management/internal/allocation"
    "github.com/iliyamo/hotel-property-management/internal/queue"
    "github.com/iliyamo/hotel-property-management/internal/repository"
    queue_publisher "github.com/iliyamo/hotel-property-management/internal/service"
)

// ReservationHandler exposes overlap inspection and merging on
// existing reservations.
type ReservationHandler struct {
    DB           *sql.DB
    Reservations *repository.ReservationRepo
    Overlaps     *allocation.OverlapChecker
    Merge        *allocation.MergeWorkflow
}

func NewReservationHandler(db *sql.DB, res *repository.ReservationRepo, ov *allocation.OverlapChecker, mw *allocation.MergeWorkflow) *ReservationHandler {
    return &ReservationHandler{DB: db, Reservations: res, Overlaps: ov, Merge: mw}
}

// GetOverlaps handles GET /v1/reservations/:id/overlaps.  Without a
// detail_id query parameter it reports collisions against every active
// detail of the reservation; with one it narrows to that single detail.
func (h *ReservationHandler) GetOverlaps(c echo.Context) error {
    id := c.Param("id")
    res, err := h.Reservations.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation lookup failed"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    // Read-only transaction for a consistent snapshot across the
    // self-join; always rolled back.
    tx, err := h.DB.BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin failed"})
    }
    defer func() { _ = tx.Rollback() }()

    var overlaps []repository.Overlap
    if raw := c.QueryParam("detail_id"); raw != "" {
        detailID, perr := strconv.ParseUint(raw, 10, 64)
        if perr != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid detail_id"})
        }
        overlaps, err = h.Overlaps.ForDetail(ctx, tx, res.HotelID, detailID, false)
    } else {
        overlaps, err = h.Overlaps.ForReservation(ctx, tx, res.HotelID, id)
    }
    if err != nil {
        return engineError(c, err)
    }

    return c.JSON(http.StatusOK, echo.Map{
        "reservation_id": id,
        "overlaps":       overlaps,
        "count":          len(overlaps),
    })
}

// GetMergeCandidates handles GET /v1/reservations/:id/merge-candidates.
func (h *ReservationHandler) GetMergeCandidates(c echo.Context) error {
    candidates, err := h.Merge.Candidates(c.Request().Context(), c.Param("id"))
    if err != nil {
        return engineError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"candidates": candidates})
}

type mergeReq struct {
    SourceID string `json:"source_id"`
}

// DoMerge handles POST /v1/reservations/:id/merge.  The path id is the
// surviving target; the body names the source to absorb.
func (h *ReservationHandler) DoMerge(c echo.Context) error {
    targetID := c.Param("id")
    var req mergeReq
    if err := c.Bind(&req); err != nil || req.SourceID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "source_id required"})
    }

    // Hotel id for the event; the merge itself re-reads under its
    // own transaction.
    var hotelID uint64
    if res, err := h.Reservations.GetByID(c.Request().Context(), targetID); err == nil {
        hotelID = res.HotelID
    }

    result, err := h.Merge.Merge(c.Request().Context(), targetID, req.SourceID)
    if err != nil {
        return engineError(c, err)
    }

    ev := queue.ReservationMergedEvent{
        TargetID:       result.TargetID,
        SourceID:       result.SourceID,
        HotelID:        hotelID,
        CheckIn:        result.CheckIn.Format(allocation.DateLayout),
        CheckOut:       result.CheckOut.Format(allocation.DateLayout),
        NumberOfPeople: result.NumberOfPeople,
        MergedBy:       actorID(c),
        MergedAt:       time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = queue_publisher.PublishReservationMerged(ctx, ev)
    }()

    return c.JSON(http.StatusOK, result)
}
