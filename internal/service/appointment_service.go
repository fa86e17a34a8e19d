package service

import (
	"context"
	"fmt"
	"time"

	"healthcare/internal/availability"
	"healthcare/internal/config"
	"healthcare/internal/db"
	"healthcare/internal/entities"
	apperrors "healthcare/internal/errors"
	"healthcare/internal/logger"
	"healthcare/internal/repository"
)

const (
	statusConfirmed = "confirmed"
	statusPending   = "pending"

	paymentCard = "card"

	defaultPageLimit = 10
	maxPageLimit     = 100
)

type AppointmentService struct {
	appointments repository.AppointmentRepository
	hospitals    repository.HospitalRepository
	doctors      repository.DoctorRepository
	users        repository.UserRepository
	payments     *PaymentService
	notifier     Notifier
	planner      *availability.Planner
	booking      config.BookingConfig

	now func() time.Time
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	hospitals repository.HospitalRepository,
	doctors repository.DoctorRepository,
	users repository.UserRepository,
	payments *PaymentService,
	notifier Notifier,
	planner *availability.Planner,
	booking config.BookingConfig,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		hospitals:    hospitals,
		doctors:      doctors,
		users:        users,
		payments:     payments,
		notifier:     notifier,
		planner:      planner,
		booking:      booking,
		now:          time.Now,
	}
}

// Book confirms an appointment for userID. Payment stays pending; card payments
// get a checkout URL when a payment gateway is configured.
func (s *AppointmentService) Book(ctx context.Context, userID int64, req entities.AppointmentRequest) (*entities.AppointmentResponse, error) {
	fields, err := fieldErrors(req)
	if err != nil {
		return nil, err
	}
	var date time.Time
	if _, bad := fields["appointmentDate"]; !bad {
		date, _ = availability.ParseDate(req.AppointmentDate)
		if !date.After(today(s.now())) {
			fields["appointmentDate"] = "The appointment date must be a date after today."
		}
	}
	if err := validationError(fields); err != nil {
		return nil, err
	}

	hospital, err := s.hospitals.GetByID(ctx, int64(req.HospitalID))
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, apperrors.Validation(map[string]string{"hospitalId": "The selected hospital is invalid."})
	}
	doctor, err := s.doctors.GetByID(ctx, int64(req.DoctorID))
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperrors.Validation(map[string]string{"doctorId": "The selected doctor is invalid."})
	}
	if doctor.HospitalID != hospital.ID {
		return nil, apperrors.Validation(map[string]string{"doctorId": "The selected doctor does not practise at this hospital."})
	}
	if err := s.checkDoctorWorks(doctor, date); err != nil {
		return nil, err
	}

	a := &db.Appointment{
		HospitalID:      hospital.ID,
		DoctorID:        doctor.ID,
		UserID:          userID,
		AppointmentDate: availability.At(date, s.planner.Slots, req.TimeSlot),
		TimeSlot:        req.TimeSlot,
		PatientName:     req.PatientName,
		PatientPhone:    req.PatientPhone,
		Problem:         req.Problem,
		Status:          statusConfirmed,
		Amount:          doctor.ConsultationFee + s.booking.ServiceFee,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   paymentPending,
		HospitalName:    hospital.Name,
		DoctorName:      doctor.Name,
		DoctorSpecialty: doctor.Specialty,
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)
	log.Info().Int64("appointment_id", a.ID).Int64("user_id", userID).Msg("appointment booked")

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("could not load user for appointment notification")
	}
	email := ""
	if user != nil {
		email = user.Email
	}

	resp := toAppointmentResponse(*a)
	if a.PaymentMethod == paymentCard && s.payments.Enabled() {
		url, err := s.payments.StartCheckout(ctx, CheckoutRequest{
			AppointmentID: a.ID,
			Amount:        a.Amount,
			Description:   fmt.Sprintf("Consultation with %s at %s", doctor.Name, hospital.Name),
			CustomerEmail: email,
		})
		if err != nil {
			// the booking stands; the patient can still pay at the hospital
			log.Error().Err(err).Int64("appointment_id", a.ID).Msg("could not start card checkout")
		}
		resp.CheckoutURL = url
	}

	if s.notifier != nil {
		s.notifier.AppointmentConfirmed(entities.AppointmentNotification{
			PatientName:     a.PatientName,
			PatientPhone:    a.PatientPhone,
			PatientEmail:    email,
			DoctorName:      doctor.Name,
			HospitalName:    hospital.Name,
			DateFormatted:   date.Format("Mon, 02 Jan 2006"),
			TimeSlot:        a.TimeSlot,
			AppointmentCode: appointmentCode(a.ID),
			Amount:          a.Amount,
			Currency:        s.booking.Currency,
		})
	}
	return &resp, nil
}

// checkDoctorWorks rejects dates outside the doctor's weekly schedule.
// Doctors without a schedule accept any day.
func (s *AppointmentService) checkDoctorWorks(d *db.Doctor, date time.Time) error {
	if len(d.AvailableDays) == 0 {
		return nil
	}
	weekly, err := weeklyAvailability(d)
	if err != nil {
		return err
	}
	if !s.planner.Check(weekly, &date).IsAvailable {
		return apperrors.Validation(map[string]string{
			"appointmentDate": fmt.Sprintf("%s is not available on %s.", d.Name, date.Weekday()),
		})
	}
	return nil
}

// List pages through the user's appointments, newest first.
func (s *AppointmentService) List(ctx context.Context, userID int64, status string, limit, offset int) (*entities.AppointmentList, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, total, err := s.appointments.ListByUser(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	list := &entities.AppointmentList{
		Appointments: make([]entities.AppointmentResponse, 0, len(rows)),
		Pagination: entities.Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: int64(offset+len(rows)) < total,
		},
	}
	for _, a := range rows {
		list.Appointments = append(list.Appointments, toAppointmentResponse(a))
	}
	return list, nil
}

func appointmentCode(id int64) string {
	return fmt.Sprintf("APT-%06d", id)
}

// today is the UTC calendar date of t.
func today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
