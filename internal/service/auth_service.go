package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"healthcare/internal/auth"
	"healthcare/internal/availability"
	"healthcare/internal/config"
	"healthcare/internal/db"
	"healthcare/internal/entities"
	apperrors "healthcare/internal/errors"
	"healthcare/internal/logger"
	"healthcare/internal/repository"
)

var (
	defaultDoctorDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	defaultDoctorTime = "9:00 AM - 5:00 PM"
)

type AuthService struct {
	users     repository.UserRepository
	doctors   repository.DoctorRepository
	hospitals repository.HospitalRepository
	jwt       config.JWTConfig

	now func() time.Time
}

func NewAuthService(users repository.UserRepository, doctors repository.DoctorRepository, hospitals repository.HospitalRepository, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{users: users, doctors: doctors, hospitals: hospitals, jwt: jwtCfg, now: time.Now}
}

// Register creates a patient, or a doctor with a linked doctor profile, and
// signs them in.
func (s *AuthService) Register(ctx context.Context, req entities.RegisterRequest) (*entities.AuthResult, error) {
	fields, err := fieldErrors(req)
	if err != nil {
		return nil, err
	}
	if err := validationError(fields); err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = db.RolePatient
	}

	var hospital *db.Hospital
	if role == db.RoleDoctor {
		if hospital, err = s.doctorHospital(ctx, req.HospitalID); err != nil {
			return nil, err
		}
	}

	u := &db.User{
		Name:                  req.Name,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Gender:                req.Gender,
		Address:               req.Address,
		EmergencyContact:      req.EmergencyContact,
		EmergencyContactPhone: req.EmergencyContactPhone,
		MedicalHistory:        strings0(req.MedicalHistory),
		Allergies:             strings0(req.Allergies),
		BloodGroup:            req.BloodGroup,
		Role:                  role,
	}
	if req.DateOfBirth != "" {
		u.DateOfBirth, _ = availability.ParseDate(req.DateOfBirth)
	}
	var doctor *db.Doctor
	if role == db.RoleDoctor {
		doctor = newDoctorProfile(u, hospital.ID, req)
		err = s.users.CreateDoctor(ctx, u, req.Password, doctor)
	} else {
		err = s.users.Create(ctx, u, req.Password)
	}
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, apperrors.Validation(map[string]string{"email": "The email has already been taken."})
		}
		return nil, err
	}
	logger.FromContext(ctx).Info().Int64("user_id", u.ID).Str("role", role).Msg("user registered")

	return s.authResult(u, doctor)
}

// doctorHospital resolves the hospital a new doctor joins; without one the
// first hospital is used.
func (s *AuthService) doctorHospital(ctx context.Context, id *entities.ID) (*db.Hospital, error) {
	var (
		h   *db.Hospital
		err error
	)
	if id != nil && *id != 0 {
		h, err = s.hospitals.GetByID(ctx, int64(*id))
	} else {
		h, err = s.hospitals.First(ctx)
	}
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, apperrors.Validation(map[string]string{"hospitalId": "The selected hospital is invalid."})
	}
	return h, nil
}

// newDoctorProfile builds the profile for a doctor registering as u. New
// doctors start on a weekday schedule.
func newDoctorProfile(u *db.User, hospitalID int64, req entities.RegisterRequest) *db.Doctor {
	d := &db.Doctor{
		HospitalID:    hospitalID,
		Name:          u.Name,
		Specialty:     req.Specialty,
		LicenseNumber: sql.NullString{String: req.LicenseNumber, Valid: req.LicenseNumber != ""},
		AvailableDays: defaultDoctorDays,
		AvailableTime: sql.NullString{String: defaultDoctorTime, Valid: true},
		Bio:           sql.NullString{String: req.Bio, Valid: req.Bio != ""},
		Languages:     []string{"English", "Swahili"},
		ClinicName:    sql.NullString{String: req.ClinicName, Valid: req.ClinicName != ""},
		ClinicAddress: sql.NullString{String: req.ClinicAddress, Valid: req.ClinicAddress != ""},
	}
	if req.YearsOfExperience != nil {
		d.Experience = *req.YearsOfExperience
	}
	return d
}

func (s *AuthService) Login(ctx context.Context, req entities.LoginRequest) (*entities.AuthResult, error) {
	fields, err := fieldErrors(req)
	if err != nil {
		return nil, err
	}
	if err := validationError(fields); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	var doctor *db.Doctor
	if u.Role == db.RoleDoctor && u.DoctorID.Valid {
		if doctor, err = s.doctors.GetByID(ctx, u.DoctorID.Int64); err != nil {
			return nil, err
		}
	}
	return s.authResult(u, doctor)
}

func (s *AuthService) Profile(ctx context.Context, userID int64) (*entities.ProfileResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NotFound(fmt.Sprintf("user %d not found", userID))
	}
	p := &entities.ProfileResponse{
		ID:                    entities.FormatID(u.ID),
		Name:                  u.Name,
		Email:                 u.Email,
		Phone:                 u.Phone,
		Gender:                u.Gender,
		Address:               u.Address,
		EmergencyContact:      u.EmergencyContact,
		EmergencyContactPhone: u.EmergencyContactPhone,
		MedicalHistory:        strings0(u.MedicalHistory),
		Allergies:             strings0(u.Allergies),
		BloodGroup:            u.BloodGroup,
		ProfileImageURL:       stringPtr(u.ProfileImageURL),
		CreatedAt:             u.CreatedAt,
	}
	if !u.DateOfBirth.IsZero() {
		p.DateOfBirth = u.DateOfBirth.Format(availability.DateLayout)
	}
	return p, nil
}

func (s *AuthService) authResult(u *db.User, doctor *db.Doctor) (*entities.AuthResult, error) {
	token, err := auth.GenerateToken([]byte(s.jwt.Secret), auth.Claims{UserID: u.ID, Role: u.Role}, s.jwt.TTL, s.now())
	if err != nil {
		return nil, apperrors.Internal("error signing token", err)
	}

	if doctor != nil {
		return &entities.AuthResult{Token: token, User: entities.DoctorLoginResponse{
			Role:              db.RoleDoctor,
			ID:                entities.FormatID(u.ID),
			Name:              u.Name,
			Email:             u.Email,
			Phone:             u.Phone,
			LicenseNumber:     stringPtr(doctor.LicenseNumber),
			Specialty:         doctor.Specialty,
			YearsOfExperience: doctor.Experience,
			ClinicName:        stringPtr(doctor.ClinicName),
			ClinicAddress:     stringPtr(doctor.ClinicAddress),
			Bio:               stringPtr(doctor.Bio),
		}}, nil
	}
	return &entities.AuthResult{Token: token, User: entities.UserResponse{
		ID:              entities.FormatID(u.ID),
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Role:            u.Role,
		ProfileImageURL: stringPtr(u.ProfileImageURL),
		CreatedAt:       u.CreatedAt,
	}}, nil
}
