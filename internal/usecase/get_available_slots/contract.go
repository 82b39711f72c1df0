package get_available_slots

import (
	"time"

	"github.com/abarriera/CPA-BookingService/internal/domain"
)

// BookingStore интерфейс локального хранилища записей
type BookingStore interface {
	All() []domain.Booking
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
