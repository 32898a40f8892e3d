package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validContactInput() *ContactInput {
	return &ContactInput{
		Name:        "Ada Lovelace",
		PhoneNumber: "0912345678",
		Email:       "ada@example.com",
		Address:     "12 Analytical Way",
	}
}

func TestContactInput_Validate_Valid(t *testing.T) {
	assert.Empty(t, validContactInput().Validate())

	// Email and address are optional.
	input := validContactInput()
	input.Email = ""
	input.Address = ""
	assert.Empty(t, input.Validate())
}

func TestContactInput_Validate_PhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{name: "ten digits", phone: "0912345678", valid: true},
		{name: "too short", phone: "091234567", valid: false},
		{name: "too long", phone: "09123456789", valid: false},
		{name: "letters", phone: "09123A5678", valid: false},
		{name: "dashes", phone: "091-234-5678", valid: false},
		{name: "spaces", phone: "0912 345678", valid: false},
		{name: "empty", phone: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validContactInput()
			input.PhoneNumber = tt.phone

			violations := input.Validate()
			if tt.valid {
				assert.Empty(t, violations)
			} else {
				assert.NotEmpty(t, violations)
			}
		})
	}
}

func TestContactInput_Validate_Messages(t *testing.T) {
	input := &ContactInput{
		Name:        "",
		PhoneNumber: "not-a-phone",
		Email:       "not-an-email",
	}

	violations := input.Validate()
	assert.Len(t, violations, 3)

	joined := strings.Join(violations, "; ")
	assert.Contains(t, joined, "Name is required.")
	assert.Contains(t, joined, "Invalid phone number format.")
	assert.Contains(t, joined, "Invalid email format.")
}

func TestRegisterInput_Validate(t *testing.T) {
	valid := &RegisterInput{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "secret-password",
	}
	assert.Empty(t, valid.Validate())

	tests := []struct {
		name    string
		input   RegisterInput
		message string
	}{
		{
			name:    "missing name",
			input:   RegisterInput{Email: "ada@example.com", Password: "secret"},
			message: "Name is required.",
		},
		{
			name:    "missing email",
			input:   RegisterInput{Name: "Ada", Password: "secret"},
			message: "Email is required.",
		},
		{
			name:    "malformed email",
			input:   RegisterInput{Name: "Ada", Email: "not-an-email", Password: "secret"},
			message: "Invalid email format.",
		},
		{
			name:    "missing password",
			input:   RegisterInput{Name: "Ada", Email: "ada@example.com"},
			message: "Password is required.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.input.Validate(), tt.message)
		})
	}
}

func TestContactInput_Validate_FieldLengths(t *testing.T) {
	longName := validContactInput()
	longName.Name = strings.Repeat("a", 101)
	assert.Contains(t, longName.Validate(), "Name must be at most 100 characters.")

	longEmail := validContactInput()
	longEmail.Email = strings.Repeat("a", 250) + "@example.com"
	assert.Contains(t, longEmail.Validate(), "Email must be at most 255 characters.")
}
