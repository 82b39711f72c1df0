package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotLabel(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{name: "morning hour passes through", label: "9:00 AM", wantHour: 9},
		{name: "noon stays twelve", label: "12:00 PM", wantHour: 12},
		{name: "midnight becomes zero", label: "12:00 AM", wantHour: 0},
		{name: "afternoon adds twelve", label: "1:00 PM", wantHour: 13},
		{name: "last slot of the grid", label: "5:00 PM", wantHour: 17},
		{name: "minutes preserved", label: "9:30 AM", wantHour: 9, wantMinute: 30},
		{name: "missing period", label: "9:00", wantErr: true},
		{name: "bad period", label: "9:00 XM", wantErr: true},
		{name: "no colon", label: "900 AM", wantErr: true},
		{name: "hour out of range", label: "13:00 PM", wantErr: true},
		{name: "empty", label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseSlotLabel(tt.label)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSlotLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, hour)
			assert.Equal(t, tt.wantMinute, minute)
		})
	}
}

func TestSlotStartAt(t *testing.T) {
	loc := time.FixedZone("AST", -4*3600)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	start, err := SlotStartAt(day, "1:00 PM", loc)
	require.NoError(t, err)

	assert.Equal(t, 13, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, loc, start.Location())
	assert.Equal(t, "2025-03-10", FormatLocalDate(start))

	// День берется по настенным часам даты, локация только из аргумента
	utcDay := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	start, err = SlotStartAt(utcDay, "10:00 AM", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 10, 0, 0, 0, loc), start)
}

func TestSlotCatalog(t *testing.T) {
	slots := TimeSlots()

	assert.Len(t, slots, 9)
	assert.Equal(t, "9:00 AM", slots[0])
	assert.Equal(t, "5:00 PM", slots[len(slots)-1])
	assert.Equal(t, SlotCount(), len(slots))

	// Catalog must be strictly increasing in wall-clock time
	prev := -1
	for _, label := range slots {
		hour, minute, err := ParseSlotLabel(label)
		require.NoError(t, err)
		assert.Greater(t, hour*60+minute, prev)
		prev = hour*60 + minute
	}

	// Returned slice is a copy
	slots[0] = "mutated"
	assert.Equal(t, "9:00 AM", TimeSlots()[0])
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandMorning, BandFor(0))
	assert.Equal(t, BandMorning, BandFor(2))
	assert.Equal(t, BandAfternoon, BandFor(3))
	assert.Equal(t, BandAfternoon, BandFor(5))
	assert.Equal(t, BandEvening, BandFor(6))
	assert.Equal(t, BandEvening, BandFor(8))
}

func TestIsKnownSlot(t *testing.T) {
	assert.True(t, IsKnownSlot("1:00 PM"))
	assert.False(t, IsKnownSlot("1:00 pm"))
	assert.False(t, IsKnownSlot("8:00 AM"))
	assert.False(t, IsKnownSlot(""))
}
