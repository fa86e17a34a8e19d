package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hospitalRowColumns = []string{"id", "name", "address", "latitude", "longitude", "specialties", "rating", "phone_number", "has_emergency", "image_url"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, mock
}

func TestHospitalRepository_List(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewHospitalRepository(conn)

	rows := sqlmock.NewRows(hospitalRowColumns).
		AddRow(1, "Muhimbili National Hospital", "United Nations Rd", -6.8, 39.2847, "{General,Cardiology}", 4.5, "+255-22-2151591", true, "https://img/h1.jpg").
		AddRow(2, "Mwananyamala Hospital", "Kinondoni", nil, nil, "{Cardiology}", 4.1, "+255-22-2760054", false, nil)

	mock.ExpectQuery(`FROM hospitals WHERE \$1 = ANY\(specialties\) ORDER BY id`).
		WithArgs("Cardiology").
		WillReturnRows(rows)

	hospitals, err := repo.List(context.Background(), "Cardiology")
	require.NoError(t, err)
	require.Len(t, hospitals, 2)

	assert.Equal(t, []string{"General", "Cardiology"}, hospitals[0].Specialties)
	assert.True(t, hospitals[0].Latitude.Valid)
	assert.True(t, hospitals[0].ImageURL.Valid)
	_, ok := hospitals[1].Coordinates()
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHospitalRepository_GetByIDNotFound(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewHospitalRepository(conn)

	mock.ExpectQuery(`FROM hospitals WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	h, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, h)
	assert.NoError(t, mock.ExpectationsWereMet())
}
