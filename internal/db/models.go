package db

import (
	"database/sql"
	"time"

	"healthcare/internal/geo"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

type User struct {
	ID                    int64
	Name                  string
	Email                 string
	Phone                 string
	PasswordHash          string
	DateOfBirth           time.Time
	Gender                string
	Address               string
	EmergencyContact      string
	EmergencyContactPhone string
	MedicalHistory        []string
	Allergies             []string
	BloodGroup            string
	ProfileImageURL       sql.NullString
	Role                  string
	DoctorID              sql.NullInt64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type Hospital struct {
	ID           int64
	Name         string
	Address      string
	Latitude     sql.NullFloat64
	Longitude    sql.NullFloat64
	Specialties  []string
	Rating       float64
	PhoneNumber  string
	HasEmergency bool
	ImageURL     sql.NullString
	Doctors      []Doctor
}

func (h Hospital) Coordinates() (geo.Point, bool) {
	return point(h.Latitude, h.Longitude)
}

type Doctor struct {
	ID              int64
	HospitalID      int64
	Name            string
	Specialty       string
	Qualification   sql.NullString
	LicenseNumber   sql.NullString
	Experience      int
	Rating          float64
	ImageURL        sql.NullString
	AvailableDays   []string
	AvailableTime   sql.NullString
	ConsultationFee float64
	Bio             sql.NullString
	Languages       []string
	ClinicName      sql.NullString
	ClinicAddress   sql.NullString
}

type Appointment struct {
	ID              int64
	HospitalID      int64
	DoctorID        int64
	UserID          int64
	AppointmentDate time.Time
	TimeSlot        string
	PatientName     string
	PatientPhone    string
	Problem         string
	Status          string
	Amount          float64
	PaymentMethod   string
	PaymentStatus   string
	StripeSessionID sql.NullString
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// joined for responses
	HospitalName    string
	DoctorName      string
	DoctorSpecialty string
}

type HomeVisit struct {
	ID                  int64
	ProviderID          string
	ProviderName        string
	ProviderType        string
	Specialty           string
	ProviderImageURL    sql.NullString
	Rating              float64
	ReviewCount         int
	Price               float64
	Currency            string
	Location            string
	Latitude            sql.NullFloat64
	Longitude           sql.NullFloat64
	EstimatedTravelTime sql.NullInt64
	AvailableDays       []string
	AvailableTimeSlots  []string
	IsAvailable         bool
	Description         string
	Services            []string
	AcceptsInsurance    bool
}

func (h HomeVisit) Coordinates() (geo.Point, bool) {
	return point(h.Latitude, h.Longitude)
}

type HomeVisitBooking struct {
	ID               int64
	HomeVisitID      int64
	ProviderID       string
	ProviderName     string
	ProviderType     string
	UserID           int64
	PatientName      string
	PatientPhone     string
	PatientAddress   string
	PatientLatitude  float64
	PatientLongitude float64
	ScheduledDate    time.Time
	TimeSlot         string
	VisitReason      string
	Symptoms         sql.NullString
	Amount           float64
	Currency         string
	Status           string
	PaymentStatus    string
	Notes            sql.NullString
	ActualVisitTime  sql.NullTime
	CompletedTime    sql.NullTime
	CreatedAt        time.Time
}

type EmergencyRequest struct {
	ID                    int64
	UserID                sql.NullInt64
	PatientName           string
	PatientPhone          string
	PatientAddress        string
	PatientLatitude       float64
	PatientLongitude      float64
	EmergencyType         string
	Description           string
	Severity              string
	Status                string
	EstimatedResponseTime string
	AssignedHospital      string
	CreatedAt             time.Time
}

func point(lat, lon sql.NullFloat64) (geo.Point, bool) {
	if !lat.Valid || !lon.Valid {
		return geo.Point{}, false
	}
	return geo.Point{Lat: lat.Float64, Lon: lon.Float64}, true
}
