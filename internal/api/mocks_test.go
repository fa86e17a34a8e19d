package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"healthcare/internal/auth"
	"healthcare/internal/availability"
	"healthcare/internal/entities"
)

var testSecret = []byte("test-secret")

type mockHospitals struct{ mock.Mock }

func (m *mockHospitals) ListHospitals(ctx context.Context, q entities.HospitalQuery) ([]entities.HospitalResponse, error) {
	args := m.Called(ctx, q)
	h, _ := args.Get(0).([]entities.HospitalResponse)
	return h, args.Error(1)
}

func (m *mockHospitals) DoctorsForHospital(ctx context.Context, id int64) ([]entities.DoctorResponse, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).([]entities.DoctorResponse)
	return d, args.Error(1)
}

type mockDoctors struct{ mock.Mock }

func (m *mockDoctors) Availability(ctx context.Context, id int64, date string) (availability.Result, error) {
	args := m.Called(ctx, id, date)
	r, _ := args.Get(0).(availability.Result)
	return r, args.Error(1)
}

type mockAppointments struct{ mock.Mock }

func (m *mockAppointments) Book(ctx context.Context, userID int64, req entities.AppointmentRequest) (*entities.AppointmentResponse, error) {
	args := m.Called(ctx, userID, req)
	a, _ := args.Get(0).(*entities.AppointmentResponse)
	return a, args.Error(1)
}

func (m *mockAppointments) List(ctx context.Context, userID int64, status string, limit, offset int) (*entities.AppointmentList, error) {
	args := m.Called(ctx, userID, status, limit, offset)
	l, _ := args.Get(0).(*entities.AppointmentList)
	return l, args.Error(1)
}

type mockHomeVisits struct{ mock.Mock }

func (m *mockHomeVisits) List(ctx context.Context, q entities.HomeVisitQuery) ([]entities.HomeVisitResponse, error) {
	args := m.Called(ctx, q)
	v, _ := args.Get(0).([]entities.HomeVisitResponse)
	return v, args.Error(1)
}

func (m *mockHomeVisits) Book(ctx context.Context, userID int64, req entities.HomeVisitBookingRequest) (*entities.HomeVisitBookingResponse, error) {
	args := m.Called(ctx, userID, req)
	b, _ := args.Get(0).(*entities.HomeVisitBookingResponse)
	return b, args.Error(1)
}

func (m *mockHomeVisits) MyBookings(ctx context.Context, userID int64) ([]entities.HomeVisitBookingResponse, error) {
	args := m.Called(ctx, userID)
	b, _ := args.Get(0).([]entities.HomeVisitBookingResponse)
	return b, args.Error(1)
}

type mockEmergency struct{ mock.Mock }

func (m *mockEmergency) Request(ctx context.Context, userID *int64, req entities.EmergencyRequest) (*entities.EmergencyResponse, error) {
	args := m.Called(ctx, userID, req)
	e, _ := args.Get(0).(*entities.EmergencyResponse)
	return e, args.Error(1)
}

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Register(ctx context.Context, req entities.RegisterRequest) (*entities.AuthResult, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*entities.AuthResult)
	return r, args.Error(1)
}

func (m *mockAuth) Login(ctx context.Context, req entities.LoginRequest) (*entities.AuthResult, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*entities.AuthResult)
	return r, args.Error(1)
}

func (m *mockAuth) Profile(ctx context.Context, userID int64) (*entities.ProfileResponse, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*entities.ProfileResponse)
	return p, args.Error(1)
}

type mockCheckout struct{ mock.Mock }

func (m *mockCheckout) CheckoutCompleted(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *mockCheckout) CheckoutExpired(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type fixture struct {
	hospitals    *mockHospitals
	doctors      *mockDoctors
	appointments *mockAppointments
	homeVisits   *mockHomeVisits
	emergency    *mockEmergency
	auth         *mockAuth
	checkout     *mockCheckout
	router       http.Handler
}

const webhookSecret = "whsec_test"

func newFixture(t *testing.T, limiter *RateLimiter) *fixture {
	f := &fixture{
		hospitals:    &mockHospitals{},
		doctors:      &mockDoctors{},
		appointments: &mockAppointments{},
		homeVisits:   &mockHomeVisits{},
		emergency:    &mockEmergency{},
		auth:         &mockAuth{},
		checkout:     &mockCheckout{},
	}
	f.router = NewRouter(Handlers{
		Auth:        NewAuthHandler(f.auth),
		Hospitals:   NewHospitalHandler(f.hospitals, f.doctors),
		Appointment: NewAppointmentHandler(f.appointments),
		HomeVisits:  NewHomeVisitHandler(f.homeVisits),
		Emergency:   NewEmergencyHandler(f.emergency),
		Stripe:      NewStripeWebhookHandler(webhookSecret, f.checkout),
	}, RouterConfig{
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"*"},
		Limiter:        limiter,
	})
	t.Cleanup(func() {
		f.hospitals.AssertExpectations(t)
		f.doctors.AssertExpectations(t)
		f.appointments.AssertExpectations(t)
		f.homeVisits.AssertExpectations(t)
		f.emergency.AssertExpectations(t)
		f.auth.AssertExpectations(t)
		f.checkout.AssertExpectations(t)
	})
	return f
}

func (f *fixture) do(method, target, body string, userID int64) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: userID, Role: "patient"}, time.Hour, time.Now())
		if err != nil {
			panic(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func ptr[T any](v T) *T { return &v }
