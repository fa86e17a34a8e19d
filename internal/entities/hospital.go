package entities

// HospitalQuery holds the optional filters of GET /api/hospitals.
type HospitalQuery struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
	Specialty string
}

type HospitalResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Address      string           `json:"address"`
	Latitude     *float64         `json:"latitude"`
	Longitude    *float64         `json:"longitude"`
	Distance     *float64         `json:"distance"`
	Specialties  []string         `json:"specialties"`
	Rating       float64          `json:"rating"`
	PhoneNumber  string           `json:"phoneNumber"`
	HasEmergency bool             `json:"hasEmergency"`
	ImageURL     *string          `json:"imageUrl"`
	Doctors      []DoctorResponse `json:"doctors"`
}

type DoctorResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	Qualification   *string  `json:"qualification"`
	Experience      int      `json:"experience"`
	Rating          float64  `json:"rating"`
	ImageURL        *string  `json:"imageUrl"`
	AvailableDays   []string `json:"availableDays"`
	AvailableTime   *string  `json:"availableTime"`
	ConsultationFee float64  `json:"consultationFee"`
	Bio             *string  `json:"bio"`
	Languages       []string `json:"languages"`
}
