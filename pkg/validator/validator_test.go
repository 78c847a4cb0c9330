package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email     string  `json:"email" validate:"required,email,orgemail"`
	Password  string  `json:"password" validate:"required,min=8"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=male female"`
	Birthdate *string `json:"birthdate" validate:"omitempty,date"`
}

func strPtr(s string) *string { return &s }

func TestCustomValidator_OrganizationEmail(t *testing.T) {
	cv := NewValidator("@esi-sba.dz")

	assert.Equal(t, "esi-sba.dz", cv.EmailDomain())
	assert.True(t, cv.IsOrganizationEmail("a@esi-sba.dz"))
	assert.True(t, cv.IsOrganizationEmail("  A.B@ESI-SBA.DZ "))
	assert.False(t, cv.IsOrganizationEmail("x@gmail.com"))
	assert.False(t, cv.IsOrganizationEmail("x@sub.esi-sba.dz"))
	assert.False(t, cv.IsOrganizationEmail("@esi-sba.dz"))
	assert.False(t, cv.IsOrganizationEmail("esi-sba.dz"))
}

func TestCustomValidator_FormatValidationErrors(t *testing.T) {
	cv := NewValidator("esi-sba.dz")

	tests := []struct {
		name   string
		input  signup
		fields map[string]string
	}{
		{
			name:   "valid",
			input:  signup{Email: "a@esi-sba.dz", Password: "secret123", Gender: strPtr("male"), Birthdate: strPtr("2001-02-03")},
			fields: nil,
		},
		{
			name:  "foreign domain",
			input: signup{Email: "x@gmail.com", Password: "secret123"},
			fields: map[string]string{
				"email": "email must end with @esi-sba.dz",
			},
		},
		{
			name:  "short password and bad enums",
			input: signup{Email: "a@esi-sba.dz", Password: "short", Gender: strPtr("other"), Birthdate: strPtr("03/02/2001")},
			fields: map[string]string{
				"password":  "password must be at least 8 characters",
				"gender":    "gender must be one of: male, female",
				"birthdate": "birthdate must use the YYYY-MM-DD format",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.input)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.fields, cv.FormatValidationErrors(err))
		})
	}
}

func TestCustomValidator_PlainText(t *testing.T) {
	cv := NewValidator("esi-sba.dz")

	tests := []struct {
		input string
		want  string
	}{
		{"  knee pain  ", "knee pain"},
		{"<b>knee</b> pain & fever", "knee pain & fever"},
		{`<script>alert("x")</script>headache`, "headache"},
		{"<img src=x onerror=alert(1)>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, cv.PlainText(tt.input))
		})
	}
}
