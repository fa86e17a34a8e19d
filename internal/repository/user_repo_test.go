package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"healthcare/internal/db"
)

func TestUserRepository_CreateHashesPassword(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	now := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))

	u := &db.User{Name: "Neema", Email: "neema@example.com", Role: db.RolePatient}
	require.NoError(t, repo.Create(context.Background(), u, "s3cret-pass"))

	assert.Equal(t, int64(5), u.ID)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	err := repo.Create(context.Background(), &db.User{Email: "taken@example.com"}, "password1")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserRepository_CreateDoctorCommits(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))
	mock.ExpectQuery(`INSERT INTO doctors`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(900))
	mock.ExpectExec(`UPDATE users SET doctor_id`).
		WithArgs(int64(5), int64(900)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	u := &db.User{Name: "Dr. Neema", Email: "neema@example.com", Role: db.RoleDoctor}
	d := &db.Doctor{HospitalID: 1, Name: "Dr. Neema", Specialty: "Cardiology"}
	require.NoError(t, repo.CreateDoctor(context.Background(), u, "s3cret-pass", d))

	assert.Equal(t, int64(900), d.ID)
	assert.True(t, u.DoctorID.Valid)
	assert.Equal(t, int64(900), u.DoctorID.Int64)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDoctorRollsBack(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(5, now, now))
	mock.ExpectQuery(`INSERT INTO doctors`).WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	u := &db.User{Email: "neema@example.com", Role: db.RoleDoctor}
	err := repo.CreateDoctor(context.Background(), u, "s3cret-pass", &db.Doctor{HospitalID: 1})

	assert.ErrorContains(t, err, "db down")
	assert.False(t, u.DoctorID.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDoctorDuplicateEmail(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewUserRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := repo.CreateDoctor(context.Background(), &db.User{Email: "taken@example.com"}, "password1", &db.Doctor{})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
