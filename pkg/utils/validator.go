package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	validate = newValidator()

	// standalone instance for the email half of the contact rule
	emailCheck = validator.New()

	phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")
	irishPhone      = regexp.MustCompile(`^(\+353|353|0)?[0-9]{9}$`)
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json name so messages line up with the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	// blank passes so an edit can clear the field
	v.RegisterValidation("contact", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		return strings.TrimSpace(raw) == "" || IsValidContact(raw)
	})
	v.RegisterValidation("optional_uuid", func(fl validator.FieldLevel) bool {
		raw := strings.TrimSpace(fl.Field().String())
		if raw == "" {
			return true
		}
		_, err := uuid.Parse(raw)
		return err == nil
	})
	v.RegisterValidation("phone_ie", func(fl validator.FieldLevel) bool {
		return IsIrishPhone(fl.Field().String())
	})
	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := ParseClock(fl.Field().String())
		return err == nil
	})

	return v
}

func ValidateStruct(data any) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid", "uuid4", "optional_uuid":
		return "Must be a valid UUID"
	case "datetime":
		return "Enter a valid date (YYYY-MM-DD)"
	case "clock":
		return "Enter a valid time (HH:MM)"
	case "phone_ie":
		return "Enter a valid Irish phone number"
	case "contact":
		return "Enter a valid email address or Irish phone number"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// FormatValidationErrors flattens the field map into one line, sorted by field
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}

// NormalizePhone strips spaces, hyphens, dots and parentheses.
func NormalizePhone(raw string) string {
	return phoneSeparators.Replace(strings.TrimSpace(raw))
}

// IsIrishPhone accepts an optional +353, 353 or 0 prefix followed by
// exactly nine digits once separators are removed.
func IsIrishPhone(raw string) bool {
	return irishPhone.MatchString(NormalizePhone(raw))
}

// IsValidContact accepts an email address or an Irish phone number.
func IsValidContact(raw string) bool {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "@") {
		return emailCheck.Var(raw, "email") == nil
	}
	return IsIrishPhone(raw)
}

// NormalizeContact trims emails and strips separators from phone numbers.
func NormalizeContact(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, "@") {
		return raw
	}
	return NormalizePhone(raw)
}

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD session date.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}

// ParseClock parses HH:MM or HH:MM:SS and returns the canonical HH:MM form.
func ParseClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{ClockLayout, "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(ClockLayout), nil
		}
	}
	return "", fmt.Errorf("invalid time %q", raw)
}
