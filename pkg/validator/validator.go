package validator

import (
	"html"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

const DateLayout = "2006-01-02"

type CustomValidator struct {
	validator   *validator.Validate
	emailDomain string
	sanitizer   *bluemonday.Policy
}

// NewValidator registers the project tags:
//   - orgemail: address must end with @<emailDomain>
//   - date: YYYY-MM-DD
func NewValidator(emailDomain string) *CustomValidator {
	v := validator.New()
	cv := &CustomValidator{
		validator:   v,
		emailDomain: strings.ToLower(strings.TrimPrefix(emailDomain, "@")),
		sanitizer:   bluemonday.StrictPolicy(),
	}

	// Report json names so clients can map errors onto their fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterValidation("orgemail", func(fl validator.FieldLevel) bool {
		return cv.IsOrganizationEmail(fl.Field().String())
	})
	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})

	return cv
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// EmailDomain returns the organization suffix, without the @.
func (cv *CustomValidator) EmailDomain() string {
	return cv.emailDomain
}

// IsOrganizationEmail reports whether email uses the organization suffix.
func (cv *CustomValidator) IsOrganizationEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return false
	}
	return email[at+1:] == cv.emailDomain
}

// PlainText strips every HTML element from free text and trims it. Entities are
// decoded so the stored value reads as the user typed it.
func (cv *CustomValidator) PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(cv.sanitizer.Sanitize(s)))
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "orgemail":
				errors[field] = field + " must end with @" + cv.emailDomain
			case "date":
				errors[field] = field + " must use the YYYY-MM-DD format"
			case "oneof":
				errors[field] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "eqfield":
				errors[field] = field + " does not match"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
