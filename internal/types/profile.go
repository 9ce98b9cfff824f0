// Package types provides type definitions for structured data used throughout the mitra system.
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LearnerProfile represents the onboarding submission for a learner.
// It is immutable once handed to the gateway for a given request.
type LearnerProfile struct {
	Name           string   `json:"name" validate:"required,min=1"`
	Email          string   `json:"email" validate:"required,email"`
	Education      string   `json:"education" validate:"required,min=1"`
	Skills         string   `json:"skills" validate:"required,min=1"`
	Aspirations    string   `json:"aspirations" validate:"required,min=1"`
	Budget         string   `json:"budget,omitempty"`
	TimeCommitment string   `json:"time_commitment,omitempty"`
	DeviceAccess   []string `json:"device_access,omitempty"`
	Constraints    string   `json:"constraints,omitempty"`
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProfileValidationError carries every field error from a profile
// submission so the caller can show all problems at once.
type ProfileValidationError struct {
	Errors []FieldError
}

func (e *ProfileValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "profile validation failed: " + strings.Join(msgs, ", ")
}

// Validate validates the LearnerProfile using the validator.
// All field errors are collected jointly, never fail-fast.
func (p *LearnerProfile) Validate() error {
	validate := validator.New()
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	pve := &ProfileValidationError{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		pve.Errors = append(pve.Errors, FieldError{
			Field:   fieldJSONName(fe.Field()),
			Message: messageForTag(fe),
		})
	}
	return pve
}

// fieldJSONName maps struct field names to their JSON wire names.
func fieldJSONName(field string) string {
	switch field {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Education":
		return "education"
	case "Skills":
		return "skills"
	case "Aspirations":
		return "aspirations"
	case "TimeCommitment":
		return "time_commitment"
	case "DeviceAccess":
		return "device_access"
	default:
		return strings.ToLower(field)
	}
}

// messageForTag converts a validator tag failure into a learner-facing message.
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fieldJSONName(fe.Field()) + " is required"
	case "email":
		return "invalid email address"
	case "min":
		return fieldJSONName(fe.Field()) + " is too short"
	default:
		return "invalid value"
	}
}

// Redacted returns a copy of the profile with personally identifying
// fields removed. Used when the learner denies the sharing consent flag:
// identifiers are never sent to the model provider.
func (p *LearnerProfile) Redacted() *LearnerProfile {
	clone := *p
	clone.Name = ""
	clone.Email = ""
	return &clone
}
