package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestJobService_Sweeps(t *testing.T) {
	store := new(mockJobStore)
	svc := NewJobService(store)
	svc.now = fixedClock

	store.On("CompletePastAppointments", mock.Anything, fixedClock()).Return(int64(4), nil)
	store.On("CancelStaleHomeVisitBookings", mock.Anything, fixedClock().Add(-24*time.Hour)).Return(int64(0), errors.New("db gone"))

	n, err := svc.CompleteFinishedAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, err = svc.CancelStaleBookings(context.Background())
	assert.ErrorContains(t, err, "db gone")
	store.AssertExpectations(t)
}

func TestJobService_Schedule(t *testing.T) {
	c := cron.New()
	require.NoError(t, NewJobService(new(mockJobStore)).Schedule(c))
	assert.Len(t, c.Entries(), 2)
}
