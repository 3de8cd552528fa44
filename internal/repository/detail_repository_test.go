package repository

import (
    "context"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestOverlapsByDetailCancelledDetailYieldsEmpty(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    when := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
    mock.ExpectBegin()
    mock.ExpectQuery("SELECT id, room_id, date, cancelled FROM reservation_details").
        WithArgs(uint64(55), uint64(5)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "date", "cancelled"}).
            AddRow(55, 11, when, when))
    mock.ExpectRollback()

    tx, err := db.Begin()
    require.NoError(t, err)

    overlaps, err := NewDetailRepo(db).OverlapsByDetailTx(context.Background(), tx, 5, 55, false)
    require.NoError(t, err)
    assert.Empty(t, overlaps)

    require.NoError(t, tx.Rollback())
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverlapsByDetailActiveDetailReportsCollisions(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    when := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
    mock.ExpectBegin()
    mock.ExpectQuery("SELECT id, room_id, date, cancelled FROM reservation_details").
        WithArgs(uint64(55), uint64(5)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "date", "cancelled"}).
            AddRow(55, 11, when, nil))
    mock.ExpectQuery("SELECT o.date, rm.room_number, o.reservation_id, res.status").
        WithArgs(uint64(11), "2026-04-02", uint64(55)).
        WillReturnRows(sqlmock.NewRows([]string{"date", "room_number", "reservation_id", "status"}).
            AddRow(when, "101", "r-9", "CONFIRMED"))
    mock.ExpectRollback()

    tx, err := db.Begin()
    require.NoError(t, err)

    overlaps, err := NewDetailRepo(db).OverlapsByDetailTx(context.Background(), tx, 5, 55, false)
    require.NoError(t, err)
    require.Len(t, overlaps, 1)
    assert.Equal(t, "101", overlaps[0].RoomNumber)
    assert.Equal(t, "r-9", overlaps[0].ReservationID)

    require.NoError(t, tx.Rollback())
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverlapsByDetailMissingDetailIsNotFound(t *testing.T) {
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    defer db.Close()

    mock.ExpectBegin()
    mock.ExpectQuery("SELECT id, room_id, date, cancelled FROM reservation_details").
        WithArgs(uint64(55), uint64(5)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "room_id", "date", "cancelled"}))
    mock.ExpectRollback()

    tx, err := db.Begin()
    require.NoError(t, err)

    _, err = NewDetailRepo(db).OverlapsByDetailTx(context.Background(), tx, 5, 55, false)
    assert.ErrorIs(t, err, ErrNotFound)

    require.NoError(t, tx.Rollback())
    assert.NoError(t, mock.ExpectationsWereMet())
}
