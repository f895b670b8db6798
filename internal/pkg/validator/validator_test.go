package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co.id"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidClock(t *testing.T) {
	assert.True(t, IsValidClock("08:00"))
	assert.True(t, IsValidClock("23:59"))
	assert.True(t, IsValidClock("00:00:30"))
	assert.False(t, IsValidClock("24:00"))
	assert.False(t, IsValidClock("08:60"))
	assert.False(t, IsValidClock("8:00"))
	assert.False(t, IsValidClock(""))
}

func TestIsValidDate(t *testing.T) {
	parsed, ok := IsValidDate("2026-03-02")
	assert.True(t, ok)
	assert.Equal(t, 2026, parsed.Year())

	_, ok = IsValidDate("02-03-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
}

func TestIsValidCoordinates(t *testing.T) {
	assert.True(t, IsValidLatitude(-6.2))
	assert.True(t, IsValidLatitude(90))
	assert.False(t, IsValidLatitude(90.1))
	assert.False(t, IsValidLatitude(-91))

	assert.True(t, IsValidLongitude(106.8))
	assert.True(t, IsValidLongitude(-180))
	assert.False(t, IsValidLongitude(180.5))
}

func TestIsValidTimezone(t *testing.T) {
	assert.True(t, IsValidTimezone("Asia/Jakarta"))
	assert.True(t, IsValidTimezone("UTC"))
	assert.False(t, IsValidTimezone("Mars/Olympus"))
	assert.False(t, IsValidTimezone(""))
}

func TestIsValidWeekday(t *testing.T) {
	assert.True(t, IsValidWeekday("monday"))
	assert.True(t, IsValidWeekday("sunday"))
	assert.True(t, IsValidWeekday("Monday")) // case-insensitive
	assert.False(t, IsValidWeekday("funday"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "timezone", Message: "timezone must be valid"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "name is required", m["name"])
	assert.NotEmpty(t, errs.Error())
}
