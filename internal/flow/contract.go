package flow

import (
	"context"
	"time"

	"github.com/abarriera/CPA-BookingService/internal/domain"
	"github.com/abarriera/CPA-BookingService/internal/usecase/submit_booking"
)

// BookingStore интерфейс локального хранилища записей
type BookingStore interface {
	All() []domain.Booking
}

// Submitter интерфейс сценария оформления записи
type Submitter interface {
	Execute(ctx context.Context, req *submit_booking.Request) (*submit_booking.Response, error)
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
