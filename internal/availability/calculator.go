// Package availability computes which dates and slots can be offered
// to a new client, given the locally known set of bookings. All checks
// are advisory: the store never hard-rejects a duplicate, the offering
// layer simply stops presenting taken slots.
package availability

import (
	"time"

	"github.com/abarriera/CPA-BookingService/internal/domain"
)

// SlotInfo is the full per-slot view for a given date
type SlotInfo struct {
	Label      string
	Band       domain.SlotBand
	Booked     bool
	Past       bool
	Selectable bool
}

// IsDateSelectable reports whether a date can be offered at all.
// Fails closed for days strictly before today; today itself stays
// selectable subject to per-slot past-time filtering. Calendar days
// are compared, not instants: the request date arrives as midnight
// UTC while today carries the server clock's location.
func IsDateSelectable(date, today time.Time) bool {
	return !domain.DayBefore(date, today)
}

// IsFullyBooked reports whether every slot of the date is taken:
// the count of non-cancelled bookings on that date has reached the
// size of the slot catalog.
func IsFullyBooked(date time.Time, bookings []domain.Booking) bool {
	return countActiveOn(domain.FormatLocalDate(date), bookings) >= domain.SlotCount()
}

// IsSlotBooked reports whether a non-cancelled booking holds the
// (date, label) pair.
func IsSlotBooked(date time.Time, label string, bookings []domain.Booking) bool {
	dateStr := domain.FormatLocalDate(date)
	for _, b := range bookings {
		if b.Date == dateStr && b.Time == label && b.IsActive() {
			return true
		}
	}
	return false
}

// IsSlotPast reports whether the slot's start instant is at or before
// now. The comparison is strict on the slot side: a slot starting
// exactly now counts as past, so a slot about to start is never offered.
// The start is built in now's location; the request date only supplies
// the wall-clock day.
func IsSlotPast(date time.Time, label string, now time.Time) bool {
	start, err := domain.SlotStartAt(date, label, now.Location())
	if err != nil {
		// Unparseable labels are never offered
		return true
	}
	return !start.After(now)
}

// IsSlotSelectable reports whether the slot can be offered: known,
// not taken, and not already past.
func IsSlotSelectable(date time.Time, label string, bookings []domain.Booking, now time.Time) bool {
	if !domain.IsKnownSlot(label) {
		return false
	}
	if IsSlotBooked(date, label, bookings) {
		return false
	}
	return !IsSlotPast(date, label, now)
}

// DaySlots returns the complete banded slot view for a date
func DaySlots(date time.Time, bookings []domain.Booking, now time.Time) []SlotInfo {
	labels := domain.TimeSlots()
	out := make([]SlotInfo, len(labels))

	for i, label := range labels {
		booked := IsSlotBooked(date, label, bookings)
		past := IsSlotPast(date, label, now)
		out[i] = SlotInfo{
			Label:      label,
			Band:       domain.BandFor(i),
			Booked:     booked,
			Past:       past,
			Selectable: !booked && !past,
		}
	}

	return out
}

// HasBookings reports whether the date carries at least one active booking
func HasBookings(date time.Time, bookings []domain.Booking) bool {
	return countActiveOn(domain.FormatLocalDate(date), bookings) > 0
}

func countActiveOn(dateStr string, bookings []domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if b.Date == dateStr && b.IsActive() {
			count++
		}
	}
	return count
}
