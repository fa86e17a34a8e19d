package entities

import "time"

type HomeVisitQuery struct {
	ProviderType  string
	Specialty     string
	MaxPrice      *float64
	Latitude      *float64
	Longitude     *float64
	MaxDistanceKm *float64
}

type HomeVisitResponse struct {
	ID                  string   `json:"id"`
	ProviderID          string   `json:"providerId"`
	ProviderName        string   `json:"providerName"`
	ProviderType        string   `json:"providerType"`
	Specialty           string   `json:"specialty"`
	ProviderImageURL    *string  `json:"providerImageUrl"`
	Rating              float64  `json:"rating"`
	ReviewCount         int      `json:"reviewCount"`
	Price               float64  `json:"price"`
	Currency            string   `json:"currency"`
	Location            string   `json:"location"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	Distance            *float64 `json:"distance,omitempty"`
	EstimatedTravelTime *int64   `json:"estimatedTravelTime"`
	AvailableDays       []string `json:"availableDays"`
	AvailableTimeSlots  []string `json:"availableTimeSlots"`
	IsAvailable         bool     `json:"isAvailable"`
	Description         string   `json:"description"`
	Services            []string `json:"services"`
	AcceptsInsurance    bool     `json:"acceptsInsurance"`
}

type HomeVisitBookingRequest struct {
	HomeVisitID      ID       `json:"homeVisitId" validate:"required"`
	PatientName      string   `json:"patientName" validate:"required,max=255"`
	PatientPhone     string   `json:"patientPhone" validate:"required,max=20"`
	PatientAddress   string   `json:"patientAddress" validate:"required"`
	PatientLatitude  *float64 `json:"patientLatitude" validate:"required,latitude"`
	PatientLongitude *float64 `json:"patientLongitude" validate:"required,longitude"`
	ScheduledDate    string   `json:"scheduledDate" validate:"required,datetime=2006-01-02"`
	TimeSlot         string   `json:"timeSlot" validate:"required"`
	VisitReason      string   `json:"visitReason" validate:"required"`
	Symptoms         string   `json:"symptoms"`
}

type HomeVisitBookingResponse struct {
	ID               string     `json:"id"`
	HomeVisitID      string     `json:"homeVisitId"`
	ProviderID       string     `json:"providerId"`
	ProviderName     string     `json:"providerName"`
	ProviderType     string     `json:"providerType"`
	PatientID        string     `json:"patientId"`
	PatientName      string     `json:"patientName"`
	PatientPhone     string     `json:"patientPhone"`
	PatientAddress   string     `json:"patientAddress"`
	PatientLatitude  float64    `json:"patientLatitude"`
	PatientLongitude float64    `json:"patientLongitude"`
	ScheduledDate    time.Time  `json:"scheduledDate"`
	TimeSlot         string     `json:"timeSlot"`
	VisitReason      string     `json:"visitReason"`
	Symptoms         *string    `json:"symptoms"`
	Amount           float64    `json:"amount"`
	Currency         string     `json:"currency"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"paymentStatus"`
	Notes            *string    `json:"notes"`
	ActualVisitTime  *time.Time `json:"actualVisitTime"`
	CompletedTime    *time.Time `json:"completedTime"`
	CreatedAt        time.Time  `json:"createdAt"`
}
