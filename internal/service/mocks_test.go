package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/stretchr/testify/mock"

	"healthcare/internal/db"
	"healthcare/internal/entities"
	"healthcare/internal/repository"
)

type mockHospitalRepo struct{ mock.Mock }

func (m *mockHospitalRepo) List(ctx context.Context, specialty string) ([]db.Hospital, error) {
	args := m.Called(ctx, specialty)
	h, _ := args.Get(0).([]db.Hospital)
	return h, args.Error(1)
}

func (m *mockHospitalRepo) ListWithEmergency(ctx context.Context) ([]db.Hospital, error) {
	args := m.Called(ctx)
	h, _ := args.Get(0).([]db.Hospital)
	return h, args.Error(1)
}

func (m *mockHospitalRepo) GetByID(ctx context.Context, id int64) (*db.Hospital, error) {
	args := m.Called(ctx, id)
	h, _ := args.Get(0).(*db.Hospital)
	return h, args.Error(1)
}

func (m *mockHospitalRepo) First(ctx context.Context) (*db.Hospital, error) {
	args := m.Called(ctx)
	h, _ := args.Get(0).(*db.Hospital)
	return h, args.Error(1)
}

type mockDoctorRepo struct{ mock.Mock }

func (m *mockDoctorRepo) GetByID(ctx context.Context, id int64) (*db.Doctor, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*db.Doctor)
	return d, args.Error(1)
}

func (m *mockDoctorRepo) ListByHospitalIDs(ctx context.Context, ids []int64) (map[int64][]db.Doctor, error) {
	args := m.Called(ctx, ids)
	d, _ := args.Get(0).(map[int64][]db.Doctor)
	return d, args.Error(1)
}

type mockAppointmentRepo struct{ mock.Mock }

func (m *mockAppointmentRepo) Create(ctx context.Context, a *db.Appointment) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil {
		a.ID = 77
		a.CreatedAt = time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	}
	return args.Error(0)
}

func (m *mockAppointmentRepo) ListByUser(ctx context.Context, userID int64, status string, limit, offset int) ([]db.Appointment, int64, error) {
	args := m.Called(ctx, userID, status, limit, offset)
	a, _ := args.Get(0).([]db.Appointment)
	return a, args.Get(1).(int64), args.Error(2)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *db.User, password string) error {
	args := m.Called(ctx, u, password)
	if args.Error(0) == nil {
		u.ID = 5
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*db.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*db.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*db.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*db.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) CreateDoctor(ctx context.Context, u *db.User, password string, d *db.Doctor) error {
	args := m.Called(ctx, u, password, d)
	if args.Error(0) == nil {
		u.ID = 5
		d.ID = 900
		u.DoctorID = sql.NullInt64{Int64: d.ID, Valid: true}
	}
	return args.Error(0)
}

type mockHomeVisitRepo struct{ mock.Mock }

func (m *mockHomeVisitRepo) List(ctx context.Context, f repository.HomeVisitFilter) ([]db.HomeVisit, error) {
	args := m.Called(ctx, f)
	v, _ := args.Get(0).([]db.HomeVisit)
	return v, args.Error(1)
}

func (m *mockHomeVisitRepo) GetByID(ctx context.Context, id int64) (*db.HomeVisit, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*db.HomeVisit)
	return v, args.Error(1)
}

func (m *mockHomeVisitRepo) CreateBooking(ctx context.Context, b *db.HomeVisitBooking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil {
		b.ID = 31
	}
	return args.Error(0)
}

func (m *mockHomeVisitRepo) ListBookingsByUser(ctx context.Context, userID int64) ([]db.HomeVisitBooking, error) {
	args := m.Called(ctx, userID)
	b, _ := args.Get(0).([]db.HomeVisitBooking)
	return b, args.Error(1)
}

type mockEmergencyRepo struct{ mock.Mock }

func (m *mockEmergencyRepo) Create(ctx context.Context, e *db.EmergencyRequest) error {
	args := m.Called(ctx, e)
	if args.Error(0) == nil {
		e.ID = 11
	}
	return args.Error(0)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) SetStripeSession(ctx context.Context, appointmentID int64, sessionID string) error {
	return m.Called(ctx, appointmentID, sessionID).Error(0)
}

func (m *mockPaymentRepo) UpdatePaymentStatusBySession(ctx context.Context, sessionID, status string) (int64, error) {
	args := m.Called(ctx, sessionID, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.String(1), args.Error(2)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) AppointmentConfirmed(n entities.AppointmentNotification) {
	m.Called(n)
}

func (m *mockNotifier) EmergencyRaised(n entities.EmergencyNotification) {
	m.Called(n)
}

type mockJobStore struct{ mock.Mock }

func (m *mockJobStore) CompletePastAppointments(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockJobStore) CancelStaleHomeVisitBookings(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

func ptr[T any](v T) *T { return &v }

// fixedClock pins service clocks to Monday 2025-01-06 10:00 UTC.
func fixedClock() time.Time {
	return time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
}
