package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() LearnerProfile {
	return LearnerProfile{
		Name:        "Anjali",
		Email:       "a@x.com",
		Education:   "B.Com",
		Skills:      "MS Office",
		Aspirations: "data analyst",
	}
}

func TestProfileValidate_Valid(t *testing.T) {
	p := validProfile()
	require.NoError(t, p.Validate())
}

func TestProfileValidate_MissingAspirations(t *testing.T) {
	p := validProfile()
	p.Aspirations = ""

	err := p.Validate()
	require.Error(t, err)

	var pve *ProfileValidationError
	require.ErrorAs(t, err, &pve)
	require.Len(t, pve.Errors, 1)
	assert.Equal(t, "aspirations", pve.Errors[0].Field)
	assert.Contains(t, pve.Errors[0].Message, "required")
}

func TestProfileValidate_AllErrorsJointly(t *testing.T) {
	p := LearnerProfile{Email: "not-an-email"}

	err := p.Validate()
	require.Error(t, err)

	var pve *ProfileValidationError
	require.ErrorAs(t, err, &pve)

	// Every failing field is reported at once, not fail-fast.
	fields := make(map[string]bool)
	for _, fe := range pve.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
	assert.True(t, fields["education"])
	assert.True(t, fields["skills"])
	assert.True(t, fields["aspirations"])
}

func TestProfileValidate_MalformedEmail(t *testing.T) {
	p := validProfile()
	p.Email = "anjali-at-example"

	err := p.Validate()
	require.Error(t, err)

	var pve *ProfileValidationError
	require.ErrorAs(t, err, &pve)
	require.Len(t, pve.Errors, 1)
	assert.Equal(t, "email", pve.Errors[0].Field)
	assert.Equal(t, "invalid email address", pve.Errors[0].Message)
}

func TestProfileRedacted(t *testing.T) {
	p := validProfile()
	red := p.Redacted()

	assert.Empty(t, red.Name)
	assert.Empty(t, red.Email)
	assert.Equal(t, "B.Com", red.Education)
	assert.Equal(t, "data analyst", red.Aspirations)

	// The original profile is untouched.
	assert.Equal(t, "Anjali", p.Name)
	assert.Equal(t, "a@x.com", p.Email)
}
