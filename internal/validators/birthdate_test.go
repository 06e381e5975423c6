package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBirthDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		raw string
		ok  bool
	}{
		{"1990-04-23", true},
		{"2025-06-15", true},
		{"2030-01-01", false}, // future
		{"23-04-1990", false},
		{"1990/04/23", false},
		{"not-a-date", false},
		{"", false},
	}

	for _, tt := range tests {
		got, ok := ParseBirthDate(tt.raw, now)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.raw, got.Format("2006-01-02"))
		}
	}
}
