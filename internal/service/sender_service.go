package service

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/rs/zerolog/log"

	"healthcare/internal/entities"
)

// Notifier tells patients and staff about bookings and emergencies.
// Implementations must not block the caller.
type Notifier interface {
	AppointmentConfirmed(n entities.AppointmentNotification)
	EmergencyRaised(n entities.EmergencyNotification)
}

const appointmentEmailHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Appointment confirmed</h2>
  <p>Hello {{.PatientName}},</p>
  <p>Your appointment is booked.</p>
  <table>
    <tr><td>Reference</td><td>{{.AppointmentCode}}</td></tr>
    <tr><td>Doctor</td><td>{{.DoctorName}}</td></tr>
    <tr><td>Hospital</td><td>{{.HospitalName}}</td></tr>
    <tr><td>Date</td><td>{{.DateFormatted}} {{.TimeSlot}}</td></tr>
    <tr><td>Amount</td><td>{{printf "%.2f" .Amount}} {{.Currency}}</td></tr>
  </table>
</body>
</html>`

var appointmentEmailTmpl = template.Must(template.New("appointment_email").Parse(appointmentEmailHTML))

type SenderService struct {
	sms   SMSSender
	email EmailSender
	// EmergencyLine receives a copy of every emergency alert when set.
	EmergencyLine string

	dispatch func(func())
}

func NewSenderService(sms SMSSender, email EmailSender) *SenderService {
	return &SenderService{
		sms:      sms,
		email:    email,
		dispatch: func(f func()) { go f() },
	}
}

func (s *SenderService) AppointmentConfirmed(n entities.AppointmentNotification) {
	smsBody := fmt.Sprintf("Appointment %s confirmed with %s at %s on %s, %s. Amount: %.2f %s.",
		n.AppointmentCode, n.DoctorName, n.HospitalName, n.DateFormatted, n.TimeSlot, n.Amount, n.Currency)

	subject := fmt.Sprintf("Your appointment is confirmed - Ref: %s", n.AppointmentCode)
	plain := fmt.Sprintf("Hello %s,\n\nYour appointment with %s at %s is confirmed for %s, %s.\nReference: %s\nAmount: %.2f %s\n",
		n.PatientName, n.DoctorName, n.HospitalName, n.DateFormatted, n.TimeSlot, n.AppointmentCode, n.Amount, n.Currency)

	var html bytes.Buffer
	if err := appointmentEmailTmpl.Execute(&html, n); err != nil {
		log.Error().Err(err).Str("appointment", n.AppointmentCode).Msg("error rendering appointment email")
	}

	s.dispatch(func() {
		if n.PatientPhone != "" {
			s.report(s.sms.SendSMS(n.PatientPhone, smsBody), "appointment SMS", n.AppointmentCode)
		}
		if n.PatientEmail != "" {
			s.report(s.email.SendEmail(n.PatientEmail, n.PatientName, subject, plain, html.String()), "appointment email", n.AppointmentCode)
		}
	})
}

func (s *SenderService) EmergencyRaised(n entities.EmergencyNotification) {
	patientBody := fmt.Sprintf("Emergency request received. %s has been alerted. Estimated response time: %s.",
		n.AssignedHospital, n.EstimatedResponseTime)
	lineBody := fmt.Sprintf("EMERGENCY (%s): %s, patient %s (%s), assigned to %s.",
		n.Severity, n.EmergencyType, n.PatientName, n.PatientPhone, n.AssignedHospital)

	s.dispatch(func() {
		if n.PatientPhone != "" {
			s.report(s.sms.SendSMS(n.PatientPhone, patientBody), "emergency SMS", n.PatientPhone)
		}
		if s.EmergencyLine != "" {
			s.report(s.sms.SendSMS(s.EmergencyLine, lineBody), "emergency line SMS", n.PatientPhone)
		}
	})
}

func (s *SenderService) report(err error, what, ref string) {
	if err == nil {
		return
	}
	if errors.Is(err, ErrSenderNotConfigured) {
		log.Debug().Str("ref", ref).Msgf("%s skipped: %v", what, err)
		return
	}
	log.Error().Err(err).Str("ref", ref).Msgf("%s failed", what)
}
