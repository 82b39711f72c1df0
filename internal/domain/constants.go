package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Appointment constants
const (
	// AppointmentDurationMinutes fixed length of every consultation.
	// End time is always start + 1 hour; variable-length appointments
	// are not supported.
	AppointmentDurationMinutes = 60

	// Timezone is the firm's civil timezone (UTC-4, no DST). Attached
	// to calendar events so the remote side interprets the naive
	// timestamps without double-conversion.
	Timezone = "America/Puerto_Rico"
)

// Reminder offsets for calendar events, in minutes before start
const (
	ReminderEmailMinutes = 24 * 60
	ReminderPopupMinutes = 60
)
