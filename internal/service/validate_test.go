package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcare/internal/entities"
)

func TestFieldErrors(t *testing.T) {
	fields, err := fieldErrors(entities.RegisterRequest{
		Name:     "Neema",
		Email:    "not-an-email",
		Phone:    "+255712000000",
		Password: "short",
		Gender:   "unknown",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"email":    "The email must be a valid email address.",
		"password": "The password must be at least 8 characters.",
		"gender":   "The selected gender is invalid. Allowed: male, female, other.",
	}, fields)

	fields, err = fieldErrors(entities.LoginRequest{Email: "a@b.co", Password: "x"})
	require.NoError(t, err)
	assert.Empty(t, fields)
	assert.NoError(t, validationError(fields))
}
