package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIrishPhone(t *testing.T) {
	valid := []string{
		"087 123 4567",
		"0871234567",
		"+353 87 123 4567",
		"353871234567",
		"(087) 123-4567",
		"087.123.4567",
		"871234567",
	}
	for _, p := range valid {
		assert.True(t, IsIrishPhone(p), p)
	}

	invalid := []string{"12345", "", "087 123 45", "+44 20 7946 0958", "08712345678", "087-abc-4567"}
	for _, p := range invalid {
		assert.False(t, IsIrishPhone(p), p)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "0871234567", NormalizePhone(" (087) 123-45.67 "))
}

func TestContact(t *testing.T) {
	assert.True(t, IsValidContact("087 123 4567"))
	assert.True(t, IsValidContact("coach@example.ie"))
	assert.False(t, IsValidContact("12345"))
	assert.False(t, IsValidContact("coach@"))

	assert.Equal(t, "0871234567", NormalizeContact("087 123 4567"))
	assert.Equal(t, "coach@example.ie", NormalizeContact(" coach@example.ie "))
	assert.Equal(t, "", NormalizeContact("  "))
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)

	got, err = ParseClock("18:05:00")
	require.NoError(t, err)
	assert.Equal(t, "18:05", got)

	for _, bad := range []string{"", "25:00", "9.30", "noon"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", d.Format(DateLayout))

	_, err = ParseDate("14/03/2026")
	assert.Error(t, err)
}

type bookingForm struct {
	Date    string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string  `json:"time" validate:"required,clock"`
	Contact string  `json:"client_contact" validate:"omitempty,contact"`
	Phone   *string `json:"phone" validate:"omitempty,phone_ie"`
}

func TestValidateStruct(t *testing.T) {
	ok := bookingForm{Date: "2026-03-14", Time: "09:30", Contact: "087 123 4567"}
	assert.Empty(t, ValidateStruct(ok))

	bad := "12345"
	errs := ValidateStruct(bookingForm{Date: "14-03-2026", Contact: "12345", Phone: &bad})
	assert.Equal(t, map[string]string{
		"date":           "Enter a valid date (YYYY-MM-DD)",
		"time":           "This field is required",
		"client_contact": "Enter a valid email address or Irish phone number",
		"phone":          "Enter a valid Irish phone number",
	}, errs)
}

type editForm struct {
	Contact  *string `json:"client_contact" validate:"omitempty,contact"`
	ClientID *string `json:"client_id" validate:"omitempty,optional_uuid"`
}

func TestValidateStruct_BlankPointersOnEdit(t *testing.T) {
	blank := ""
	assert.Empty(t, ValidateStruct(editForm{Contact: &blank, ClientID: &blank}))

	contact, id := "12345", "not-a-uuid"
	assert.Equal(t, map[string]string{
		"client_contact": "Enter a valid email address or Irish phone number",
		"client_id":      "Must be a valid UUID",
	}, ValidateStruct(editForm{Contact: &contact, ClientID: &id}))

	good := "3f0c6a8e-9d1b-4c2a-8f5e-2b7d9e4a1c33"
	assert.Empty(t, ValidateStruct(editForm{ClientID: &good}))
}

func TestFormatValidationErrors(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"time": "This field is required",
		"date": "This field is required",
	})
	assert.Equal(t, "date: This field is required; time: This field is required", got)
}
