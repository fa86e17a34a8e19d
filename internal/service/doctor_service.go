package service

import (
	"context"
	"fmt"

	"healthcare/internal/availability"
	"healthcare/internal/db"
	apperrors "healthcare/internal/errors"
	"healthcare/internal/repository"
)

type DoctorService struct {
	doctors repository.DoctorRepository
	planner *availability.Planner
}

func NewDoctorService(doctors repository.DoctorRepository, planner *availability.Planner) *DoctorService {
	return &DoctorService{doctors: doctors, planner: planner}
}

// Availability reports whether the doctor works on date (YYYY-MM-DD, may be
// empty) and the next dates they do.
func (s *DoctorService) Availability(ctx context.Context, doctorID int64, date string) (availability.Result, error) {
	d, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return availability.Result{}, err
	}
	if d == nil {
		return availability.Result{}, apperrors.NotFound(fmt.Sprintf("doctor %d not found", doctorID))
	}

	weekly, err := weeklyAvailability(d)
	if err != nil {
		return availability.Result{}, err
	}
	return s.planner.CheckDate(weekly, date)
}

// weeklyAvailability reads the doctor's stored schedule. Bad weekday names are
// a data problem, not a client one.
func weeklyAvailability(d *db.Doctor) (availability.WeeklyAvailability, error) {
	days, err := availability.ParseWeekdays(d.AvailableDays)
	if err != nil {
		return availability.WeeklyAvailability{}, apperrors.Internal(fmt.Sprintf("doctor %d has an invalid schedule", d.ID), err)
	}
	return availability.WeeklyAvailability{Days: days, TimeRange: d.AvailableTime.String}, nil
}
