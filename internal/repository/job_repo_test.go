package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRepository(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewJobRepository(conn)
	now := time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE appointments SET status = 'completed'`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE home_visit_bookings SET status = 'cancelled'`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.CompletePastAppointments(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.CancelStaleHomeVisitBookings(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
