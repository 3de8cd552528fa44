package allocation

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/iliyamo/hotel-property-management/internal/model"
    "github.com/iliyamo/hotel-property-management/internal/repository"
)

// relation classifies how two reservations' active-detail spans relate
// for merge purposes.
type relation int

const (
    relationNone relation = iota
    relationSameDates
    relationContiguous
)

// classifySpans decides whether two spans are merge candidates.
// Same-dates: identical min and max dates, always eligible.
// Contiguous: one span's last date is immediately followed by the
// other's first date; eligible only when people totals match, which
// is checked at merge time, not here.
func classifySpans(target, source repository.Span) relation {
    if target.Nights == 0 || source.Nights == 0 {
        return relationNone
    }
    if target.MinDate.Equal(source.MinDate) && target.MaxDate.Equal(source.MaxDate) {
        return relationSameDates
    }
    if target.MaxDate.AddDate(0, 0, 1).Equal(source.MinDate) ||
        source.MaxDate.AddDate(0, 0, 1).Equal(target.MinDate) {
        return relationContiguous
    }
    return relationNone
}

// MergeResult reports the surviving reservation after a merge.
type MergeResult struct {
    TargetID       string    `json:"target_id"`
    SourceID       string    `json:"source_id"`
    CheckIn        time.Time `json:"check_in"`
    CheckOut       time.Time `json:"check_out"`
    NumberOfPeople int       `json:"number_of_people"`
}

// MergeCandidate is one reservation structurally eligible to merge
// with the reservation under inspection.  The people-count rule for
// contiguous candidates is deliberately not applied here; it is
// enforced only at merge execution time.
type MergeCandidate struct {
    ReservationID string    `json:"reservation_id"`
    CheckIn       time.Time `json:"check_in"`
    CheckOut      time.Time `json:"check_out"`
    Relation      string    `json:"relation"` // SAME_DATES or CONTIGUOUS
}

// MergeWorkflow merges two reservations of the same booker into one:
// the target is kept, the source is absorbed.  All mutation happens in
// one transaction; on any failure the source survives unchanged.
type MergeWorkflow struct {
    DB           *sql.DB
    Reservations ReservationStore
    Details      DetailStore
}

// Merge validates eligibility and absorbs source into target:
// details and payments are reassigned, the target's derived
// check-in/check-out/people are recomputed from the unioned active
// details, and the source row is deleted.
func (w *MergeWorkflow) Merge(ctx context.Context, targetID, sourceID string) (*MergeResult, error) {
    if targetID == "" || sourceID == "" {
        return nil, validationf("both reservation ids are required")
    }
    if targetID == sourceID {
        return nil, validationf("cannot merge a reservation into itself")
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

    target, err := w.getReservation(ctx, tx, targetID)
    if err != nil {
        return nil, err
    }
    source, err := w.getReservation(ctx, tx, sourceID)
    if err != nil {
        return nil, err
    }
    if target.ClientID != source.ClientID {
        return nil, conflictf("reservations belong to different clients")
    }

    targetSpan, err := w.Details.ActiveSpanTx(ctx, tx, targetID)
    if err != nil {
        return nil, storage("target span scan failed", err)
    }
    sourceSpan, err := w.Details.ActiveSpanTx(ctx, tx, sourceID)
    if err != nil {
        return nil, storage("source span scan failed", err)
    }

    switch classifySpans(targetSpan, sourceSpan) {
    case relationSameDates:
        // Eligible regardless of people counts.
    case relationContiguous:
        if targetSpan.MaxPeople != sourceSpan.MaxPeople {
            return nil, conflictf("contiguous reservations must have equal people counts (%d vs %d)",
                targetSpan.MaxPeople, sourceSpan.MaxPeople)
        }
    default:
        return nil, conflictf("reservations are neither same-dated nor contiguous")
    }

    if err := w.Details.ReassignTx(ctx, tx, sourceID, targetID); err != nil {
        return nil, storage("reassign details", err)
    }
    if err := w.Reservations.ReassignPaymentsTx(ctx, tx, sourceID, targetID); err != nil {
        return nil, storage("reassign payments", err)
    }

    merged, err := w.Details.ActiveSpanTx(ctx, tx, targetID)
    if err != nil {
        return nil, storage("merged span scan failed", err)
    }
    checkIn := merged.MinDate
    checkOut := merged.MaxDate.AddDate(0, 0, 1) // exclusive
    if err := w.Reservations.UpdateSpanTx(ctx, tx, targetID, checkIn, checkOut, merged.MaxPeople); err != nil {
        return nil, storage("update target span", err)
    }
    if err := w.Reservations.DeleteTx(ctx, tx, sourceID); err != nil {
        return nil, storage("delete source reservation", err)
    }

    if err := tx.Commit(); err != nil {
        return nil, storage("commit merge", err)
    }
    committed = true
    return &MergeResult{
        TargetID:       targetID,
        SourceID:       sourceID,
        CheckIn:        checkIn,
        CheckOut:       checkOut,
        NumberOfPeople: merged.MaxPeople,
    }, nil
}

// Candidates surfaces other reservations of the same hotel and booker
// whose spans are same-dated or contiguous with the given reservation.
// Read-only; runs in a transaction that is always rolled back.
func (w *MergeWorkflow) Candidates(ctx context.Context, reservationID string) ([]MergeCandidate, error) {
    if reservationID == "" {
        return nil, validationf("reservation id is required")
    }
    tx, err := w.DB.BeginTx(ctx, nil)
    if err != nil {
        return nil, storage("begin transaction", err)
    }
    defer func() { _ = tx.Rollback() }()

    res, err := w.getReservation(ctx, tx, reservationID)
    if err != nil {
        return nil, err
    }
    span, err := w.Details.ActiveSpanTx(ctx, tx, reservationID)
    if err != nil {
        return nil, storage("span scan failed", err)
    }
    siblings, err := w.Details.SpansByClientTx(ctx, tx, res.HotelID, res.ClientID, reservationID)
    if err != nil {
        return nil, storage("sibling scan failed", err)
    }

    candidates := make([]MergeCandidate, 0)
    for _, sib := range siblings {
        var rel string
        switch classifySpans(span, sib.Span) {
        case relationSameDates:
            rel = "SAME_DATES"
        case relationContiguous:
            rel = "CONTIGUOUS"
        default:
            continue
        }
        candidates = append(candidates, MergeCandidate{
            ReservationID: sib.ReservationID,
            CheckIn:       sib.Span.MinDate,
            CheckOut:      sib.Span.MaxDate.AddDate(0, 0, 1),
            Relation:      rel,
        })
    }
    return candidates, nil
}

func (w *MergeWorkflow) getReservation(ctx context.Context, tx *sql.Tx, id string) (*model.Reservation, error) {
    res, err := w.Reservations.GetTx(ctx, tx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return nil, validationf("reservation %s not found", id)
        }
        return nil, storage("reservation lookup failed", err)
    }
    return res, nil
}
