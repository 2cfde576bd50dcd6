package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-01-31")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDate_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"31/01/2024",
		"2024-1-31",
		"2024-01-31'; DROP TABLE campaign; --",
		"yesterday",
	}

	for _, input := range invalid {
		_, err := ParseDate(input)
		assert.Error(t, err, "entrada aceita indevidamente: %q", input)
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-31", FormatDate(date))
}
