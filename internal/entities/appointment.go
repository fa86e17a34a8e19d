package entities

import "time"

type AppointmentRequest struct {
	HospitalID      ID     `json:"hospitalId" validate:"required"`
	DoctorID        ID     `json:"doctorId" validate:"required"`
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"timeSlot" validate:"required"`
	PatientName     string `json:"patientName" validate:"required,max=255"`
	PatientPhone    string `json:"patientPhone" validate:"required,max=20"`
	Problem         string `json:"problem" validate:"required"`
	PaymentMethod   string `json:"paymentMethod" validate:"required,oneof=mpesa card cash"`
}

type AppointmentResponse struct {
	ID              string    `json:"id"`
	HospitalID      string    `json:"hospitalId"`
	HospitalName    string    `json:"hospitalName"`
	DoctorID        string    `json:"doctorId"`
	DoctorName      string    `json:"doctorName"`
	DoctorSpecialty string    `json:"doctorSpecialty"`
	AppointmentDate time.Time `json:"appointmentDate"`
	TimeSlot        string    `json:"timeSlot"`
	PatientName     string    `json:"patientName"`
	PatientPhone    string    `json:"patientPhone"`
	Problem         string    `json:"problem"`
	Status          string    `json:"status"`
	Amount          float64   `json:"amount"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentStatus   string    `json:"paymentStatus"`
	CheckoutURL     string    `json:"checkoutUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type AppointmentList struct {
	Appointments []AppointmentResponse
	Pagination   Pagination
}
