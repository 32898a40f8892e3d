package usecase

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phoneNumberPattern is the exact contract for phone numbers: ten digits, nothing else.
var phoneNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// inputValidator backs the input DTOs' Validate methods. It is deliberately
// independent of the web framework so validation can run anywhere.
var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for a non-string field, which would be a programming error.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneNumberPattern.MatchString(fl.Field().String())
	})

	return v
}

// Validate checks the input against the contact field constraints and returns
// one message per violated field. An empty slice means the input is valid.
func (in *ContactInput) Validate() []string {
	err := inputValidator.Struct(in)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid contact input."}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, contactFieldMessage(fieldErr))
	}

	return messages
}

// Validate checks the registration input. The account-identity constraints
// live here so they hold regardless of the transport.
func (in *RegisterInput) Validate() []string {
	err := inputValidator.Struct(in)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid registration input."}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, registerFieldMessage(fieldErr))
	}

	return messages
}

func registerFieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "Name":
		if fieldErr.Tag() == "required" {
			return "Name is required."
		}

		return "Name must be at most 100 characters."
	case "Email":
		switch fieldErr.Tag() {
		case "required":
			return "Email is required."
		case "max":
			return "Email must be at most 255 characters."
		default:
			return "Invalid email format."
		}
	case "Password":
		return "Password is required."
	default:
		return "Invalid value for " + fieldErr.Field() + "."
	}
}

func contactFieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "Name":
		if fieldErr.Tag() == "required" {
			return "Name is required."
		}

		return "Name must be at most 100 characters."
	case "PhoneNumber":
		if fieldErr.Tag() == "required" {
			return "Phone number is required."
		}

		return "Invalid phone number format."
	case "Email":
		if fieldErr.Tag() == "max" {
			return "Email must be at most 255 characters."
		}

		return "Invalid email format."
	default:
		return "Invalid value for " + fieldErr.Field() + "."
	}
}
