package entities

import "time"

type RegisterRequest struct {
	Name                  string   `json:"name" validate:"required,max=255"`
	Email                 string   `json:"email" validate:"required,email"`
	Phone                 string   `json:"phone" validate:"required,max=20"`
	Password              string   `json:"password" validate:"required,min=8"`
	DateOfBirth           string   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender                string   `json:"gender" validate:"omitempty,oneof=male female other"`
	Address               string   `json:"address"`
	EmergencyContact      string   `json:"emergencyContact"`
	EmergencyContactPhone string   `json:"emergencyContactPhone"`
	MedicalHistory        []string `json:"medicalHistory"`
	Allergies             []string `json:"allergies"`
	BloodGroup            string   `json:"bloodGroup"`
	Role                  string   `json:"role" validate:"omitempty,oneof=patient doctor"`

	// doctor registration
	HospitalID        *ID    `json:"hospitalId"`
	LicenseNumber     string `json:"licenseNumber" validate:"required_if=Role doctor"`
	Specialty         string `json:"specialty" validate:"required_if=Role doctor"`
	YearsOfExperience *int   `json:"yearsOfExperience" validate:"omitempty,min=0"`
	ClinicName        string `json:"clinicName"`
	ClinicAddress     string `json:"clinicAddress"`
	Bio               string `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is what register and login hand back to the client.
type AuthResult struct {
	Token string
	User  any
}

type UserResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Role            string    `json:"role"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

type DoctorLoginResponse struct {
	Role              string  `json:"role"`
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	LicenseNumber     *string `json:"licenseNumber"`
	Specialty         string  `json:"specialty"`
	YearsOfExperience int     `json:"yearsOfExperience"`
	ClinicName        *string `json:"clinicName"`
	ClinicAddress     *string `json:"clinicAddress"`
	Bio               *string `json:"bio"`
}

type ProfileResponse struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone"`
	DateOfBirth           string    `json:"dateOfBirth"`
	Gender                string    `json:"gender"`
	Address               string    `json:"address"`
	EmergencyContact      string    `json:"emergencyContact"`
	EmergencyContactPhone string    `json:"emergencyContactPhone"`
	MedicalHistory        []string  `json:"medicalHistory"`
	Allergies             []string  `json:"allergies"`
	BloodGroup            string    `json:"bloodGroup"`
	ProfileImageURL       *string   `json:"profileImageUrl"`
	CreatedAt             time.Time `json:"createdAt"`
}
