package submit_booking

import (
	"context"
	"time"

	"github.com/abarriera/CPA-BookingService/internal/domain"
	"github.com/abarriera/CPA-BookingService/internal/integrations/googlecalendar"
)

// BookingStore интерфейс локального хранилища записей
type BookingStore interface {
	All() []domain.Booking
	Append(ctx context.Context, b domain.Booking)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus)
}

// CalendarClient интерфейс клиента удаленного календаря
type CalendarClient interface {
	CreateEvent(ctx context.Context, booking *domain.Booking) (*googlecalendar.CreatedEvent, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// SyncObserver учитывает исходы синхронизации с календарем
type SyncObserver interface {
	ObserveSync(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
