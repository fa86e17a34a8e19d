package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// JobStore is the maintenance side of the appointment and booking tables.
type JobStore interface {
	CompletePastAppointments(ctx context.Context, before time.Time) (int64, error)
	CancelStaleHomeVisitBookings(ctx context.Context, before time.Time) (int64, error)
}

const (
	appointmentSweepSpec = "@every 1h"
	bookingSweepSpec     = "@daily"
	jobTimeout           = time.Minute
)

type JobService struct {
	Repo JobStore
	now  func() time.Time
}

func NewJobService(repo JobStore) *JobService {
	return &JobService{Repo: repo, now: time.Now}
}

// CompleteFinishedAppointments marks confirmed appointments whose slot has passed as completed.
func (s *JobService) CompleteFinishedAppointments(ctx context.Context) (int64, error) {
	n, err := s.Repo.CompletePastAppointments(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("cron job: failed to complete past appointments: %w", err)
	}
	if n > 0 {
		log.Info().Int64("count", n).Msg("cron job: appointments marked completed")
	}
	return n, nil
}

// CancelStaleBookings cancels home-visit bookings still pending a day after their scheduled date.
func (s *JobService) CancelStaleBookings(ctx context.Context) (int64, error) {
	n, err := s.Repo.CancelStaleHomeVisitBookings(ctx, s.now().Add(-24*time.Hour))
	if err != nil {
		return 0, fmt.Errorf("cron job: failed to cancel stale home visit bookings: %w", err)
	}
	if n > 0 {
		log.Info().Int64("count", n).Msg("cron job: stale home visit bookings cancelled")
	}
	return n, nil
}

// Schedule registers the maintenance jobs on c. The caller starts and stops c.
func (s *JobService) Schedule(c *cron.Cron) error {
	jobs := []struct {
		spec string
		name string
		run  func(context.Context) (int64, error)
	}{
		{appointmentSweepSpec, "complete_appointments", s.CompleteFinishedAppointments},
		{bookingSweepSpec, "cancel_stale_bookings", s.CancelStaleBookings},
	}
	for _, j := range jobs {
		j := j
		_, err := c.AddFunc(j.spec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			if _, err := j.run(ctx); err != nil {
				log.Error().Err(err).Str("job", j.name).Msg("cron job failed")
			}
		})
		if err != nil {
			return fmt.Errorf("error scheduling %s: %w", j.name, err)
		}
	}
	return nil
}
