package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLocalDateRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "late evening behind UTC keeps the local day",
			in:   time.Date(2025, 3, 10, 23, 0, 0, 0, time.FixedZone("AST", -4*3600)),
			want: "2025-03-10",
		},
		{
			name: "early morning ahead of UTC keeps the local day",
			in:   time.Date(2025, 3, 10, 0, 30, 0, 0, time.FixedZone("JST", 9*3600)),
			want: "2025-03-10",
		},
		{
			name: "utc midnight",
			in:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want: "2025-01-01",
		},
		{
			name: "single digit month and day are padded",
			in:   time.Date(2025, 2, 3, 12, 0, 0, 0, time.UTC),
			want: "2025-02-03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLocalDate(tt.in)
			assert.Equal(t, tt.want, got)

			y, m, d, err := ParseLocalDate(got)
			require.NoError(t, err)

			wy, wm, wd := tt.in.Date()
			assert.Equal(t, wy, y)
			assert.Equal(t, wm, m)
			assert.Equal(t, wd, d)
		})
	}
}

func TestParseLocalDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2025-13-01", "03/10/2025", "2025-3-10", "not-a-date"} {
		_, _, _, err := ParseLocalDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestDayBefore(t *testing.T) {
	ast := time.FixedZone("AST", -4*3600)

	assert.True(t, DayBefore(
		time.Date(2025, 3, 9, 23, 59, 0, 0, ast),
		time.Date(2025, 3, 10, 0, 0, 0, 0, ast),
	))
	assert.False(t, DayBefore(
		time.Date(2025, 3, 10, 0, 0, 0, 0, ast),
		time.Date(2025, 3, 10, 23, 59, 0, 0, ast),
	))
	assert.False(t, DayBefore(
		time.Date(2025, 3, 11, 0, 0, 0, 0, ast),
		time.Date(2025, 3, 10, 12, 0, 0, 0, ast),
	))

	// Дни сравниваются по настенным часам каждой из сторон: полночь UTC
	// не "раньше" того же дня на часах позади UTC
	assert.False(t, DayBefore(
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 10, 10, 0, 0, 0, ast),
	))
	assert.True(t, DayBefore(
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 11, 0, 30, 0, 0, ast),
	))
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("AST", -4*3600)
	assert.True(t, SameDay(
		time.Date(2025, 3, 10, 0, 1, 0, 0, loc),
		time.Date(2025, 3, 10, 23, 59, 0, 0, loc),
	))
	assert.False(t, SameDay(
		time.Date(2025, 3, 10, 23, 59, 0, 0, loc),
		time.Date(2025, 3, 11, 0, 0, 0, 0, loc),
	))
}

func TestNewBookingID(t *testing.T) {
	now := time.UnixMilli(1741617000000)
	assert.Equal(t, "booking-1741617000000", NewBookingID(now))
}

func TestBookingIsActive(t *testing.T) {
	b := Booking{Status: StatusPending}
	assert.True(t, b.IsActive())
	b.Status = StatusConfirmed
	assert.True(t, b.IsActive())
	assert.True(t, b.IsSynced())
	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
}
