package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"healthcare/internal/availability"
	"healthcare/internal/db"
	apperrors "healthcare/internal/errors"
)

func newTestPlanner() *availability.Planner {
	p := availability.NewPlanner(availability.DefaultConfig())
	p.Clock = fixedClock
	return p
}

func TestDoctorService_Availability(t *testing.T) {
	doctors := new(mockDoctorRepo)
	svc := NewDoctorService(doctors, newTestPlanner())

	doctors.On("GetByID", mock.Anything, int64(10)).Return(&db.Doctor{
		ID: 10, AvailableDays: []string{"Monday", "Wednesday", "Friday"},
	}, nil)

	// Tuesday
	res, err := svc.Availability(context.Background(), 10, "2025-01-07")
	require.NoError(t, err)
	assert.False(t, res.IsAvailable)
	assert.Empty(t, res.AvailableTimeSlots)
	require.NotEmpty(t, res.AlternativeDates)
	assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), res.AlternativeDates[0])

	// Monday
	res, err = svc.Availability(context.Background(), 10, "2025-01-13")
	require.NoError(t, err)
	assert.True(t, res.IsAvailable)
	assert.Equal(t, []string{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM", "4:00 PM"}, res.AvailableTimeSlots)

	// no date: unavailable, alternatives from the planner clock (Monday 2025-01-06)
	res, err = svc.Availability(context.Background(), 10, "")
	require.NoError(t, err)
	assert.False(t, res.IsAvailable)
	assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), res.AlternativeDates[0])

	_, err = svc.Availability(context.Background(), 10, "07/01/2025")
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
}

func TestDoctorService_AvailabilityErrors(t *testing.T) {
	doctors := new(mockDoctorRepo)
	svc := NewDoctorService(doctors, newTestPlanner())

	doctors.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)
	_, err := svc.Availability(context.Background(), 1, "2025-01-07")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	doctors.On("GetByID", mock.Anything, int64(2)).Return(&db.Doctor{ID: 2, AvailableDays: []string{"Funday"}}, nil)
	_, err = svc.Availability(context.Background(), 2, "2025-01-07")
	assert.True(t, apperrors.Is(err, apperrors.KindInternal))
}
