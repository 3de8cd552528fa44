package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/iliyamo/hotel-property-management/internal/model"
)

// ReservationRepo provides CRUD operations on the reservations table.
// Check-in/check-out columns are derived values recomputed from the
// active details by the workflows; the repository only persists what
// it is told.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// CreateTx inserts a new reservation within the scope of an existing
// transaction.  The caller supplies the id (a UUID) together with all
// business columns; timestamps default in the database.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
    const q = `INSERT INTO reservations
               (id, hotel_id, reservation_client_id, check_in, check_out, number_of_people, status, type, block_kind, comment, created_by)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
    var kind interface{}
    if res.BlockKind != nil {
        kind = *res.BlockKind
    }
    _, err := tx.ExecContext(ctx, q,
        res.ID, res.HotelID, res.ClientID,
        res.CheckIn.Format(dateLayout), res.CheckOut.Format(dateLayout),
        res.NumberOfPeople, res.Status, res.Type, kind, res.Comment, res.CreatedBy)
    return err
}

// GetTx fetches a reservation by id inside the caller's transaction.
// Returns ErrNotFound when no such row exists.
func (r *ReservationRepo) GetTx(ctx context.Context, tx *sql.Tx, id string) (*model.Reservation, error) {
    const q = `SELECT id, hotel_id, reservation_client_id, check_in, check_out, number_of_people,
                      status, type, block_kind, comment, created_by, created_at, updated_at
               FROM reservations WHERE id = ?`
    return scanReservation(tx.QueryRowContext(ctx, q, id))
}

// GetByID fetches a reservation outside any transaction, for read-only
// handler paths.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
    const q = `SELECT id, hotel_id, reservation_client_id, check_in, check_out, number_of_people,
                      status, type, block_kind, comment, created_by, created_at, updated_at
               FROM reservations WHERE id = ?`
    return scanReservation(r.db.QueryRowContext(ctx, q, id))
}

type rowScanner interface {
    Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*model.Reservation, error) {
    var (
        res     model.Reservation
        kind    sql.NullString
        comment sql.NullString
    )
    err := row.Scan(&res.ID, &res.HotelID, &res.ClientID, &res.CheckIn, &res.CheckOut,
        &res.NumberOfPeople, &res.Status, &res.Type, &kind, &comment, &res.CreatedBy,
        &res.CreatedAt, &res.UpdatedAt)
    if err == sql.ErrNoRows {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    if kind.Valid {
        k := kind.String
        res.BlockKind = &k
    }
    if comment.Valid {
        res.Comment = comment.String
    }
    return &res, nil
}

// UpdateSpanTx rewrites the derived check-in/check-out/people columns
// after a merge recomputed them from the unioned active details.
func (r *ReservationRepo) UpdateSpanTx(ctx context.Context, tx *sql.Tx, id string, checkIn, checkOut time.Time, people int) error {
    _, err := tx.ExecContext(ctx,
        `UPDATE reservations SET check_in = ?, check_out = ?, number_of_people = ? WHERE id = ?`,
        checkIn.Format(dateLayout), checkOut.Format(dateLayout), people, id)
    return err
}

// ReassignPaymentsTx moves all payment rows from the source reservation
// to the target so no payment history is lost when the source row is
// deleted at the end of a merge.
func (r *ReservationRepo) ReassignPaymentsTx(ctx context.Context, tx *sql.Tx, sourceID, targetID string) error {
    _, err := tx.ExecContext(ctx,
        `UPDATE reservation_payments SET reservation_id = ? WHERE reservation_id = ?`,
        targetID, sourceID)
    return err
}

// DeleteTx removes a reservation row.  Only ever called for the source
// of a successful merge, after its details and payments have been
// reassigned.
func (r *ReservationRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id string) error {
    _, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
    return err
}
