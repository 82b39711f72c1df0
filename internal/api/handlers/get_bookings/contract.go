package get_bookings

import (
	"github.com/abarriera/CPA-BookingService/internal/domain"
)

type BookingStore interface {
	All() []domain.Booking
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
