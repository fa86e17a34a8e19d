package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"healthcare/internal/db"
)

// ErrEmailTaken is returned by Create when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, u *db.User, password string) error
	GetByEmail(ctx context.Context, email string) (*db.User, error)
	GetByID(ctx context.Context, id int64) (*db.User, error)
	// CreateDoctor inserts the user, the doctor profile and the link between
	// them in one transaction.
	CreateDoctor(ctx context.Context, u *db.User, password string, d *db.Doctor) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, phone, password_hash, date_of_birth, gender, address, emergency_contact,
	emergency_contact_phone, medical_history, allergies, blood_group, profile_image_url, role, doctor_id, created_at, updated_at`

func scanUser(s scanner) (db.User, error) {
	var u db.User
	err := s.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.PasswordHash, &u.DateOfBirth, &u.Gender, &u.Address,
		&u.EmergencyContact, &u.EmergencyContactPhone, pq.Array(&u.MedicalHistory), pq.Array(&u.Allergies),
		&u.BloodGroup, &u.ProfileImageURL, &u.Role, &u.DoctorID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create hashes password with bcrypt and inserts the user.
func (r *userRepository) Create(ctx context.Context, u *db.User, password string) error {
	if err := hashPassword(u, password); err != nil {
		return err
	}
	return insertUser(ctx, r.db, u)
}

func (r *userRepository) CreateDoctor(ctx context.Context, u *db.User, password string, d *db.Doctor) error {
	if err := hashPassword(u, password); err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertUser(ctx, tx, u); err != nil {
		return err
	}
	if err := insertDoctor(ctx, tx, d); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE users SET doctor_id = $2, updated_at = NOW() WHERE id = $1`, u.ID, d.ID); err != nil {
		return fmt.Errorf("error linking doctor %d to user %d: %w", d.ID, u.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing doctor registration: %w", err)
	}
	u.DoctorID = sql.NullInt64{Int64: d.ID, Valid: true}
	return nil
}

func hashPassword(u *db.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func insertUser(ctx context.Context, q querier, u *db.User) error {
	query := `
		INSERT INTO users
		(name, email, phone, password_hash, date_of_birth, gender, address, emergency_contact, emergency_contact_phone,
		 medical_history, allergies, blood_group, profile_image_url, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err := q.QueryRowContext(ctx, query,
		u.Name,
		u.Email,
		u.Phone,
		u.PasswordHash,
		u.DateOfBirth,
		u.Gender,
		u.Address,
		u.EmergencyContact,
		u.EmergencyContactPhone,
		pq.Array(u.MedicalHistory),
		pq.Array(u.Allergies),
		u.BloodGroup,
		u.ProfileImageURL,
		u.Role,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrEmailTaken
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByEmail returns nil when no user has the email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*db.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return &u, nil
}

// GetByID returns nil when no user has the id.
func (r *userRepository) GetByID(ctx context.Context, id int64) (*db.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user %d: %w", id, err)
	}
	return &u, nil
}
