package entities

// AppointmentNotification is the data rendered into confirmation SMS and email.
type AppointmentNotification struct {
	PatientName     string
	PatientPhone    string
	PatientEmail    string
	DoctorName      string
	HospitalName    string
	DateFormatted   string
	TimeSlot        string
	AppointmentCode string
	Amount          float64
	Currency        string
}

type EmergencyNotification struct {
	PatientName           string
	PatientPhone          string
	EmergencyType         string
	Severity              string
	AssignedHospital      string
	EstimatedResponseTime string
}
