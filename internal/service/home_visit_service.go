package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"healthcare/internal/availability"
	"healthcare/internal/db"
	"healthcare/internal/entities"
	apperrors "healthcare/internal/errors"
	"healthcare/internal/geo"
	"healthcare/internal/logger"
	"healthcare/internal/repository"
)

type HomeVisitService struct {
	visits  repository.HomeVisitRepository
	planner *availability.Planner
	geo     geo.Config

	now func() time.Time
}

func NewHomeVisitService(visits repository.HomeVisitRepository, planner *availability.Planner, geoCfg geo.Config) *HomeVisitService {
	return &HomeVisitService{visits: visits, planner: planner, geo: geoCfg, now: time.Now}
}

// List returns matching providers; with both coordinates only those within
// MaxDistanceKm (default radius otherwise) are kept, nearest first.
func (s *HomeVisitService) List(ctx context.Context, q entities.HomeVisitQuery) ([]entities.HomeVisitResponse, error) {
	visits, err := s.visits.List(ctx, repository.HomeVisitFilter{
		ProviderType: q.ProviderType,
		Specialty:    q.Specialty,
		MaxPrice:     q.MaxPrice,
	})
	if err != nil {
		return nil, err
	}

	radius := s.geo.DefaultRadiusKm
	if q.MaxDistanceKm != nil {
		radius = *q.MaxDistanceKm
	}
	found, err := filterNearby(s.geo, origin(q.Latitude, q.Longitude), visits, radius)
	if err != nil {
		return nil, err
	}

	out := make([]entities.HomeVisitResponse, 0, len(found))
	for _, f := range found {
		out = append(out, toHomeVisitResponse(f.Item, f.DistanceKm))
	}
	return out, nil
}

// Book requests a home visit from a provider for userID.
func (s *HomeVisitService) Book(ctx context.Context, userID int64, req entities.HomeVisitBookingRequest) (*entities.HomeVisitBookingResponse, error) {
	fields, err := fieldErrors(req)
	if err != nil {
		return nil, err
	}
	var date time.Time
	if _, bad := fields["scheduledDate"]; !bad {
		date, _ = availability.ParseDate(req.ScheduledDate)
		if date.Before(today(s.now())) {
			fields["scheduledDate"] = "The scheduled date must be today or later."
		}
	}
	if err := validationError(fields); err != nil {
		return nil, err
	}

	visit, err := s.visits.GetByID(ctx, int64(req.HomeVisitID))
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("home visit provider %d not found", req.HomeVisitID))
	}
	if !visit.IsAvailable {
		return nil, apperrors.Conflict(fmt.Sprintf("%s is not accepting home visits", visit.ProviderName))
	}
	if err := s.checkProviderWorks(visit, date, req.TimeSlot); err != nil {
		return nil, err
	}

	b := &db.HomeVisitBooking{
		HomeVisitID:      visit.ID,
		ProviderID:       visit.ProviderID,
		ProviderName:     visit.ProviderName,
		ProviderType:     visit.ProviderType,
		UserID:           userID,
		PatientName:      req.PatientName,
		PatientPhone:     req.PatientPhone,
		PatientAddress:   req.PatientAddress,
		PatientLatitude:  *req.PatientLatitude,
		PatientLongitude: *req.PatientLongitude,
		ScheduledDate:    availability.At(date, s.planner.Slots, req.TimeSlot),
		TimeSlot:         req.TimeSlot,
		VisitReason:      req.VisitReason,
		Amount:           visit.Price,
		Currency:         visit.Currency,
		Status:           statusPending,
		PaymentStatus:    paymentPending,
	}
	if req.Symptoms != "" {
		b.Symptoms.String, b.Symptoms.Valid = req.Symptoms, true
	}
	if err := s.visits.CreateBooking(ctx, b); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info().Int64("booking_id", b.ID).Int64("home_visit_id", visit.ID).Msg("home visit booked")

	resp := toBookingResponse(*b)
	return &resp, nil
}

// checkProviderWorks holds the booking to the provider's declared days and
// slots when the provider declares any.
func (s *HomeVisitService) checkProviderWorks(v *db.HomeVisit, date time.Time, slot string) error {
	fields := map[string]string{}
	if len(v.AvailableDays) > 0 {
		days, err := availability.ParseWeekdays(v.AvailableDays)
		if err != nil {
			return apperrors.Internal(fmt.Sprintf("home visit %d has an invalid schedule", v.ID), err)
		}
		if !s.planner.Check(availability.WeeklyAvailability{Days: days}, &date).IsAvailable {
			fields["scheduledDate"] = fmt.Sprintf("%s does not visit on %s.", v.ProviderName, date.Weekday())
		}
	}
	if len(v.AvailableTimeSlots) > 0 && !slices.Contains(v.AvailableTimeSlots, slot) {
		fields["timeSlot"] = "The selected time slot is not offered by this provider."
	}
	return validationError(fields)
}

func (s *HomeVisitService) MyBookings(ctx context.Context, userID int64) ([]entities.HomeVisitBookingResponse, error) {
	bookings, err := s.visits.ListBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.HomeVisitBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out, nil
}
