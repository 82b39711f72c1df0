package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the sync status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a consultation appointment in the system.
// Date is always the client's local wall-clock date (YYYY-MM-DD) and
// Time is the exact slot label the client picked (e.g. "1:00 PM").
// The label doubles as the matching key against other bookings.
type Booking struct {
	ID      string        `json:"id"`
	Date    string        `json:"date"`
	Time    string        `json:"time"`
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Service string        `json:"service"`
	Notes   string        `json:"notes,omitempty"`
	Status  BookingStatus `json:"status"`
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsSynced returns true if the booking reached the remote calendar
func (b *Booking) IsSynced() bool {
	return b.Status == StatusConfirmed
}

// NewBookingID generates a booking identifier from the given instant.
// Millisecond timestamps are unique enough for a single-writer store.
func NewBookingID(now time.Time) string {
	return fmt.Sprintf("booking-%d", now.UnixMilli())
}

// IsValidStatus returns true for one of the known status values
func IsValidStatus(s BookingStatus) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}
