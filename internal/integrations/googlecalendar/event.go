package googlecalendar

import (
	"fmt"
	"strings"

	"google.golang.org/api/calendar/v3"

	"github.com/abarriera/CPA-BookingService/internal/domain"
)

// CreatedEvent результат успешного создания события
type CreatedEvent struct {
	ID       string
	HTMLLink string
}

// BuildEvent turns a booking into the calendar event to insert.
//
// The date string is split into integer parts and the 12-hour slot
// label is normalized with the shared AM/PM rule; the start timestamp
// is the naive local combination of both with zero seconds, the end is
// exactly one hour later (hour+1, no day rollover: the last slot of
// the fixed catalog starts at 5 PM, so overflow past 24 cannot occur).
// The firm's civil timezone is attached so the remote side interprets
// the naive timestamps without double-conversion.
func BuildEvent(b *domain.Booking, timezone string) (*calendar.Event, error) {
	year, month, day, err := domain.ParseLocalDate(b.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q: %v", ErrInvalidBooking, b.Date, err)
	}

	hour, minute, err := domain.ParseSlotLabel(b.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: bad time %q: %v", ErrInvalidBooking, b.Time, err)
	}

	start := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:00", year, int(month), day, hour, minute)
	end := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:00", year, int(month), day,
		hour+domain.AppointmentDurationMinutes/60, minute)

	notes := b.Notes
	if notes == "" {
		notes = "No additional notes"
	}

	description := strings.Join([]string{
		fmt.Sprintf("Client: %s", b.Name),
		fmt.Sprintf("Email: %s", b.Email),
		fmt.Sprintf("Phone: %s", b.Phone),
		fmt.Sprintf("Service: %s", b.Service),
		fmt.Sprintf("Notes: %s", notes),
		fmt.Sprintf("Booking ID: %s", b.ID),
	}, "\n")

	return &calendar.Event{
		Summary:     fmt.Sprintf("%s - %s", b.Service, b.Name),
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: start,
			TimeZone: timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end,
			TimeZone: timezone,
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: domain.ReminderEmailMinutes},
				{Method: "popup", Minutes: domain.ReminderPopupMinutes},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}, nil
}
