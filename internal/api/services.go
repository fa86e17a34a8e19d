package api

import (
	"context"

	"healthcare/internal/availability"
	"healthcare/internal/entities"
)

// The handlers depend on these rather than on the concrete services.

type HospitalFinder interface {
	ListHospitals(ctx context.Context, q entities.HospitalQuery) ([]entities.HospitalResponse, error)
	DoctorsForHospital(ctx context.Context, hospitalID int64) ([]entities.DoctorResponse, error)
}

type AvailabilityChecker interface {
	Availability(ctx context.Context, doctorID int64, date string) (availability.Result, error)
}

type AppointmentBooker interface {
	Book(ctx context.Context, userID int64, req entities.AppointmentRequest) (*entities.AppointmentResponse, error)
	List(ctx context.Context, userID int64, status string, limit, offset int) (*entities.AppointmentList, error)
}

type HomeVisitBooker interface {
	List(ctx context.Context, q entities.HomeVisitQuery) ([]entities.HomeVisitResponse, error)
	Book(ctx context.Context, userID int64, req entities.HomeVisitBookingRequest) (*entities.HomeVisitBookingResponse, error)
	MyBookings(ctx context.Context, userID int64) ([]entities.HomeVisitBookingResponse, error)
}

type EmergencyDispatcher interface {
	Request(ctx context.Context, userID *int64, req entities.EmergencyRequest) (*entities.EmergencyResponse, error)
}

type Authenticator interface {
	Register(ctx context.Context, req entities.RegisterRequest) (*entities.AuthResult, error)
	Login(ctx context.Context, req entities.LoginRequest) (*entities.AuthResult, error)
	Profile(ctx context.Context, userID int64) (*entities.ProfileResponse, error)
}

type CheckoutEvents interface {
	CheckoutCompleted(ctx context.Context, sessionID string) error
	CheckoutExpired(ctx context.Context, sessionID string) error
}
