package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeSlots is the immutable catalog of bookable labels per business day
var timeSlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM",
}

// SlotBand groups slots for presentation only
type SlotBand string

const (
	BandMorning   SlotBand = "morning"
	BandAfternoon SlotBand = "afternoon"
	BandEvening   SlotBand = "evening"
)

var (
	// ErrInvalidSlotLabel возвращается при метке слота вне формата "H:MM AM|PM"
	ErrInvalidSlotLabel = errors.New("domain: invalid slot label")

	// ErrUnknownSlot возвращается для метки, которой нет в каталоге
	ErrUnknownSlot = errors.New("domain: unknown slot")
)

// TimeSlots returns the ordered catalog of slot labels
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// SlotCount returns the number of slots in a business day
func SlotCount() int {
	return len(timeSlots)
}

// IsKnownSlot returns true if the label is part of the catalog
func IsKnownSlot(label string) bool {
	for _, s := range timeSlots {
		if s == label {
			return true
		}
	}
	return false
}

// BandFor returns the presentation band for a catalog position.
// The catalog is partitioned into thirds: morning, afternoon, evening.
func BandFor(index int) SlotBand {
	third := len(timeSlots) / 3
	switch {
	case index < third:
		return BandMorning
	case index < 2*third:
		return BandAfternoon
	default:
		return BandEvening
	}
}

// ParseSlotLabel parses a 12-hour slot label into 24-hour clock parts.
// Rules: "12:00 PM" stays hour 12, "12:00 AM" becomes hour 0, any other
// PM hour adds 12, AM hours pass through unchanged.
func ParseSlotLabel(label string) (hour, minute int, err error) {
	parts := strings.Split(label, " ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	period := parts[1]
	if period != "AM" && period != "PM" {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	clock := strings.Split(parts[0], ":")
	if len(clock) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	hour, err = strconv.Atoi(clock[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	minute, err = strconv.Atoi(clock[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotLabel, label)
	}

	if period == "PM" && hour != 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour = 0
	}

	return hour, minute, nil
}

// SlotStartAt combines a calendar day with a slot label into the slot's
// start instant in the given location. Only the wall-clock year, month
// and day of date are used; its own location never leaks into the
// result, so a midnight-UTC request date still yields the start the
// observer's clock would show.
func SlotStartAt(date time.Time, label string, loc *time.Location) (time.Time, error) {
	hour, minute, err := ParseSlotLabel(label)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, loc), nil
}
