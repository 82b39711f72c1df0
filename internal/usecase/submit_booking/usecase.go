// Package submit_booking implements the booking submission scenario:
// validate the form, persist the booking locally, then try to mirror
// it to the remote calendar. The local record is written before any
// network call so a calendar outage can never lose a booking.
package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/abarriera/CPA-BookingService/internal/domain"
	"github.com/abarriera/CPA-BookingService/internal/integrations/googlecalendar"
)

// Usecase сценарий оформления записи на прием
type Usecase struct {
	store        BookingStore
	calendar     CalendarClient
	timeProvider TimeProvider
	observer     SyncObserver // nil, если метрики выключены
	log          Logger
}

// NewUsecase создает новый экземпляр Usecase
func NewUsecase(store BookingStore, calendar CalendarClient, timeProvider TimeProvider, observer SyncObserver, log Logger) *Usecase {
	return &Usecase{
		store:        store,
		calendar:     calendar,
		timeProvider: timeProvider,
		observer:     observer,
		log:          log,
	}
}

// Execute обрабатывает заявку на запись
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация данных формы. Карта ошибок по полям остается
	// доступной через errors.As
	if errs := validate(req); errs != nil {
		u.log.Warn("submit_booking: validation failed: %v", errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	// 2. Формирование записи в статусе pending
	now := u.timeProvider.Now()
	booking := domain.Booking{
		ID:      domain.NewBookingID(now),
		Date:    domain.FormatLocalDate(req.Date),
		Time:    req.TimeSlot,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Notes:   req.Notes,
		Status:  domain.StatusPending,
	}

	// 3. Локальное сохранение до любых сетевых вызовов
	u.store.Append(ctx, booking)

	// 4. Синхронизация с удаленным календарем
	event, err := u.calendar.CreateEvent(ctx, &booking)
	if err != nil {
		// 5а. Сбой синхронизации не отменяет запись
		u.log.Warn("submit_booking: calendar sync failed for booking id=%s: %v", booking.ID, err)
		if errors.Is(err, googlecalendar.ErrNotConfigured) {
			u.log.Warn("submit_booking: calendar integration is not configured")
		}
		u.observeSync(syncOutcome(err))
		return &Response{
			Booking:     booking,
			SyncWarning: true,
		}, nil
	}

	// 5б. Подтверждение записи после успешной синхронизации
	u.store.UpdateStatus(ctx, booking.ID, domain.StatusConfirmed)
	booking.Status = domain.StatusConfirmed
	u.observeSync("confirmed")

	u.log.Info("submit_booking: booking id=%s confirmed, event id=%s", booking.ID, event.ID)
	return &Response{
		Booking:   booking,
		EventID:   event.ID,
		EventLink: event.HTMLLink,
	}, nil
}

func (u *Usecase) observeSync(outcome string) {
	if u.observer != nil {
		u.observer.ObserveSync(outcome)
	}
}

func syncOutcome(err error) string {
	switch {
	case errors.Is(err, googlecalendar.ErrAccessDenied):
		return "auth_denied"
	case errors.Is(err, googlecalendar.ErrCalendarNotFound):
		return "not_found"
	case errors.Is(err, googlecalendar.ErrNotConfigured):
		return "not_configured"
	default:
		return "failed"
	}
}
