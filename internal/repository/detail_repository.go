package repository

import (
    "context"
    "database/sql"
    "strings"
    "time"
)

// DetailRepo provides data access to the reservation_details table,
// the atomic unit of room occupancy.  A detail is "active" while its
// cancelled column is NULL; the single invariant protected by the
// whole engine is that at most one active detail exists per
// (hotel_id, room_id, date) triple.  All mutations happen through the
// caller's transaction.
type DetailRepo struct {
    db *sql.DB
}

// NewDetailRepo returns a new DetailRepo bound to the given database.
func NewDetailRepo(db *sql.DB) *DetailRepo { return &DetailRepo{db: db} }

// Span summarizes the active details of one reservation: the first and
// last occupied dates and the people total.  MaxPeople is the maximum
// over all dates of the summed number_of_people for that date, which
// is the people figure the merge rules compare.  Nights counts the
// distinct occupied dates; zero means the reservation has no active
// details.
type Span struct {
    MinDate   time.Time
    MaxDate   time.Time
    MaxPeople int
    Nights    int
}

// ReservationSpan pairs a reservation id with its active-detail span.
// Returned by SpansByClientTx when looking for merge candidates.
type ReservationSpan struct {
    ReservationID string
    Span          Span
}

// Overlap describes one colliding room-night: an active detail of
// another reservation occupying the same (hotel, room, date) as the
// reservation under inspection.
type Overlap struct {
    Date          time.Time `json:"date"`
    RoomNumber    string    `json:"room_number"`
    ReservationID string    `json:"reservation_id"`
    Status        string    `json:"status"`
}

// DetailRecord carries the columns needed to insert one room-night.
type DetailRecord struct {
    HotelID        uint64
    ReservationID  string
    RoomID         uint64
    Date           string // YYYY-MM-DD
    NumberOfPeople int
    Billable       bool
}

// CreateBulkTx inserts multiple reservation_details rows in a single
// statement.  Passing an empty slice has no effect and returns nil.
// A duplicate-key failure on the active-occupancy index surfaces as
// ErrConflict.  The caller must commit or roll back the transaction.
func (r *DetailRepo) CreateBulkTx(ctx context.Context, tx *sql.Tx, details []DetailRecord) error {
    if len(details) == 0 {
        return nil
    }
    query := `INSERT INTO reservation_details (hotel_id, reservation_id, room_id, date, number_of_people, billable) VALUES `
    args := make([]interface{}, 0, len(details)*6)
    for i, d := range details {
        if i > 0 {
            query += ","
        }
        query += "(?, ?, ?, ?, ?, ?)"
        args = append(args, d.HotelID, d.ReservationID, d.RoomID, d.Date, d.NumberOfPeople, d.Billable)
    }
    if _, err := tx.ExecContext(ctx, query, args...); err != nil {
        if strings.Contains(err.Error(), "1062") {
            return ErrConflict
        }
        return err
    }
    return nil
}

// ExistsActiveTx reports whether an active detail occupies the given
// (hotel, room, date) triple.  Always queried live inside the caller's
// transaction; occupancy is never cached.
func (r *DetailRepo) ExistsActiveTx(ctx context.Context, tx *sql.Tx, hotelID, roomID uint64, date string) (bool, error) {
    const q = `SELECT 1 FROM reservation_details
               WHERE hotel_id = ? AND room_id = ? AND date = ? AND cancelled IS NULL
               LIMIT 1`
    var one int
    err := tx.QueryRowContext(ctx, q, hotelID, roomID, date).Scan(&one)
    if err == sql.ErrNoRows {
        return false, nil
    }
    if err != nil {
        return false, err
    }
    return true, nil
}

// FirstConflictTx returns the earliest date in [from, to) on which the
// given room already carries an active detail, or nil when the whole
// range is free.  The matched detail row is locked so a concurrent
// writer cannot cancel or move it under the caller.
func (r *DetailRepo) FirstConflictTx(ctx context.Context, tx *sql.Tx, hotelID, roomID uint64, from, to string) (*time.Time, error) {
    const q = `SELECT date FROM reservation_details
               WHERE hotel_id = ? AND room_id = ? AND cancelled IS NULL
                 AND date >= ? AND date < ?
               ORDER BY date LIMIT 1
               FOR UPDATE`
    var d time.Time
    err := tx.QueryRowContext(ctx, q, hotelID, roomID, from, to).Scan(&d)
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &d, nil
}

// ActiveSpanTx computes the span of a reservation's active details.
// A reservation with no active details yields a Span with Nights == 0.
func (r *DetailRepo) ActiveSpanTx(ctx context.Context, tx *sql.Tx, reservationID string) (Span, error) {
    const q = `SELECT MIN(x.date), MAX(x.date), MAX(x.day_people), COUNT(*)
               FROM (
                   SELECT date, SUM(number_of_people) AS day_people
                   FROM reservation_details
                   WHERE reservation_id = ? AND cancelled IS NULL
                   GROUP BY date
               ) x`
    var (
        minDate, maxDate sql.NullTime
        maxPeople        sql.NullInt64
        nights           int
    )
    if err := tx.QueryRowContext(ctx, q, reservationID).Scan(&minDate, &maxDate, &maxPeople, &nights); err != nil {
        return Span{}, err
    }
    var s Span
    s.Nights = nights
    if minDate.Valid {
        s.MinDate = minDate.Time
    }
    if maxDate.Valid {
        s.MaxDate = maxDate.Time
    }
    if maxPeople.Valid {
        s.MaxPeople = int(maxPeople.Int64)
    }
    return s, nil
}

// OverlapsByReservationTx finds all room-nights of *other* reservations
// colliding with any active detail of the given reservation.  The
// result is read-only and ordered by date then room number so reports
// are deterministic.
func (r *DetailRepo) OverlapsByReservationTx(ctx context.Context, tx *sql.Tx, hotelID uint64, reservationID string) ([]Overlap, error) {
    const q = `SELECT o.date, rm.room_number, o.reservation_id, res.status
               FROM reservation_details d
               JOIN reservation_details o
                 ON o.room_id = d.room_id AND o.date = d.date
                AND o.reservation_id <> d.reservation_id
                AND o.cancelled IS NULL
               JOIN rooms rm ON rm.id = o.room_id
               JOIN reservations res ON res.id = o.reservation_id
               WHERE d.reservation_id = ? AND d.hotel_id = ? AND d.cancelled IS NULL
               ORDER BY o.date, rm.room_number`
    return r.scanOverlaps(tx.QueryContext(ctx, q, reservationID, hotelID))
}

// OverlapsByDetailTx finds collisions against a single detail.  A
// cancelled detail occupies nothing, so inspecting one yields an empty
// report.  When lock is true the inspected detail row is read with
// FOR UPDATE to serialize against concurrent writers targeting the
// same detail.
func (r *DetailRepo) OverlapsByDetailTx(ctx context.Context, tx *sql.Tx, hotelID, detailID uint64, lock bool) ([]Overlap, error) {
    sel := `SELECT id, room_id, date, cancelled FROM reservation_details WHERE id = ? AND hotel_id = ?`
    if lock {
        sel += ` FOR UPDATE`
    }
    var (
        id        uint64
        roomID    uint64
        date      time.Time
        cancelled sql.NullTime
    )
    if err := tx.QueryRowContext(ctx, sel, detailID, hotelID).Scan(&id, &roomID, &date, &cancelled); err != nil {
        if err == sql.ErrNoRows {
            return nil, ErrNotFound
        }
        return nil, err
    }
    if cancelled.Valid {
        return []Overlap{}, nil
    }
    const q = `SELECT o.date, rm.room_number, o.reservation_id, res.status
               FROM reservation_details o
               JOIN rooms rm ON rm.id = o.room_id
               JOIN reservations res ON res.id = o.reservation_id
               WHERE o.room_id = ? AND o.date = ? AND o.id <> ? AND o.cancelled IS NULL
               ORDER BY o.reservation_id`
    return r.scanOverlaps(tx.QueryContext(ctx, q, roomID, date.Format(dateLayout), id))
}

func (r *DetailRepo) scanOverlaps(rows *sql.Rows, err error) ([]Overlap, error) {
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]Overlap, 0)
    for rows.Next() {
        var o Overlap
        if err := rows.Scan(&o.Date, &o.RoomNumber, &o.ReservationID, &o.Status); err != nil {
            return nil, err
        }
        out = append(out, o)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// ReassignTx moves every detail row (active and cancelled) from the
// source reservation to the target.  Details are reassigned, never
// deleted, so billing history survives a merge.
func (r *DetailRepo) ReassignTx(ctx context.Context, tx *sql.Tx, sourceID, targetID string) error {
    _, err := tx.ExecContext(ctx,
        `UPDATE reservation_details SET reservation_id = ? WHERE reservation_id = ?`,
        targetID, sourceID)
    return err
}

// SpansByClientTx returns the active-detail spans of every other
// reservation of the same hotel and booker.  Cancelled reservations
// and reservations without active details are excluded, since neither
// can take part in a merge.
func (r *DetailRepo) SpansByClientTx(ctx context.Context, tx *sql.Tx, hotelID, clientID uint64, excludeID string) ([]ReservationSpan, error) {
    const q = `SELECT x.reservation_id, MIN(x.date), MAX(x.date), MAX(x.day_people), COUNT(*)
               FROM (
                   SELECT d.reservation_id, d.date, SUM(d.number_of_people) AS day_people
                   FROM reservation_details d
                   JOIN reservations res ON res.id = d.reservation_id
                   WHERE res.hotel_id = ? AND res.reservation_client_id = ?
                     AND res.id <> ? AND res.status <> 'CANCELLED'
                     AND d.cancelled IS NULL
                   GROUP BY d.reservation_id, d.date
               ) x
               GROUP BY x.reservation_id
               ORDER BY MIN(x.date)`
    rows, err := tx.QueryContext(ctx, q, hotelID, clientID, excludeID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var out []ReservationSpan
    for rows.Next() {
        var rs ReservationSpan
        if err := rows.Scan(&rs.ReservationID, &rs.Span.MinDate, &rs.Span.MaxDate, &rs.Span.MaxPeople, &rs.Span.Nights); err != nil {
            return nil, err
        }
        out = append(out, rs)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}
