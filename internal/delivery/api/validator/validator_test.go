package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&signup{Email: "asha@example.com", Password: "secret1"}))

	err := v.Validate(&signup{Email: "not-an-email", Password: "abc", Status: "paused"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "password must be at least 6 characters")
	assert.Contains(t, err.Error(), "status must be one of active inactive")

	err = v.Validate(&signup{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
}
