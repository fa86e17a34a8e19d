package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var doctorRowColumns = []string{"id", "hospital_id", "name", "specialty", "qualification", "license_number", "experience", "rating",
	"image_url", "available_days", "available_time", "consultation_fee", "bio", "languages", "clinic_name", "clinic_address"}

func TestDoctorRepository_ListByHospitalIDs(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewDoctorRepository(conn)

	rows := sqlmock.NewRows(doctorRowColumns).
		AddRow(1, 1, "Dr. John Mwakalinga", "General Medicine", "MBBS, MD", nil, 10, 4.7, nil, "{Monday,Tuesday}", "9:00 AM - 5:00 PM", 30000.0, nil, "{English,Kiswahili}", nil, nil).
		AddRow(2, 1, "Dr. Amina Said", "Cardiology", nil, nil, 8, 4.8, nil, "{Friday}", nil, 50000.0, nil, "{}", nil, nil).
		AddRow(3, 2, "Dr. Peter Mushi", "Pediatrics", nil, nil, 5, 4.2, nil, "{}", nil, 25000.0, nil, "{}", nil, nil)

	mock.ExpectQuery(`FROM doctors WHERE hospital_id = ANY\(\$1\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	byHospital, err := repo.ListByHospitalIDs(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	require.Len(t, byHospital[1], 2)
	require.Len(t, byHospital[2], 1)
	assert.Equal(t, []string{"Monday", "Tuesday"}, byHospital[1][0].AvailableDays)
	assert.Equal(t, "9:00 AM - 5:00 PM", byHospital[1][0].AvailableTime.String)
	assert.False(t, byHospital[1][1].AvailableTime.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDoctorRepository_ListByHospitalIDsEmpty(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewDoctorRepository(conn)

	byHospital, err := repo.ListByHospitalIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, byHospital)
	assert.NoError(t, mock.ExpectationsWereMet())
}
