package sync_booking

import (
	"context"

	"github.com/abarriera/CPA-BookingService/internal/domain"
	"github.com/abarriera/CPA-BookingService/internal/integrations/googlecalendar"
)

type CalendarClient interface {
	CreateEvent(ctx context.Context, booking *domain.Booking) (*googlecalendar.CreatedEvent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
