package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "weekday with month name",
			text: "Receipt\nFri, Sep 19, 2025\nThank you",
			want: "2025-09-19",
		},
		{
			name: "full weekday and month",
			text: "Friday, September 19, 2025",
			want: "2025-09-19",
		},
		{
			name: "month name without weekday",
			text: "Date: Sep 19, 2025",
			want: "2025-09-19",
		},
		{
			name: "numeric day first with slashes",
			text: "19/09/2025 14:32",
			want: "2025-09-19",
		},
		{
			name: "numeric year first with dashes",
			text: "2025-09-19 POS PURCHASE",
			want: "2025-09-19",
		},
		{
			name: "numeric with dots and short year",
			text: "19.09.25",
			want: "2025-09-19",
		},
		{
			name: "day before month name",
			text: "19 September 2025",
			want: "2025-09-19",
		},
		{
			name: "no date falls back to processing day",
			text: "WALMART\nTOTAL $45.67",
			want: "2026-03-14",
		},
		{
			name: "empty text falls back to processing day",
			text: "",
			want: "2026-03-14",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDateAt(tt.text, now))
		})
	}
}

func TestExtractDateFirstPatternWins(t *testing.T) {
	now := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	// Both a named and a numeric date appear; the named patterns are
	// declared first, so the named date wins.
	text := "Mon, Jan 5, 2026\n19/09/2025"
	assert.Equal(t, "2026-01-05", extractDateAt(text, now))
}
