package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	d := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "15-01-2024", Format(d))
}

func TestParseRoundTrip(t *testing.T) {
	parsed, err := Parse("15-01-2024")
	assert.NoError(t, err)
	assert.Equal(t, "15-01-2024", Format(parsed))
}

func TestIsUnknown(t *testing.T) {
	assert.True(t, IsUnknown(""))
	assert.True(t, IsUnknown("Unknown"))
	assert.True(t, IsUnknown("  "))
	assert.False(t, IsUnknown("15-01-2024"))
}

func TestNormalize(t *testing.T) {
	fallback := "01-06-2024"

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown stays unknown", "Unknown", Unknown},
		{"empty becomes unknown", "", Unknown},
		{"day-month-year passes through", "15-01-2024", "15-01-2024"},
		{"year-month-day is flipped", "2024-01-15", "15-01-2024"},
		{"garbage becomes fallback", "last week", fallback},
		{"surrounding whitespace trimmed", " 15-01-2024 ", "15-01-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input, fallback))
		})
	}
}

func TestFromFilename(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{"iso token", "canyon_bikes_2024-01-15.csv", "15-01-2024"},
		{"day first token", "trek_bikes_15-01-2024.csv", "15-01-2024"},
		{"compact token", "canyon_bikes_20240115_143022.csv", "15-01-2024"},
		{"no token", "canyon_bikes_latest.csv", Unknown},
		{"token in directory path", "historical/trek_bikes_2023-12-01.csv", "01-12-2023"},
		{"implausible digits", "bikes_00000000.csv", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFilename(tt.file))
		})
	}
}
