// Package get_available_slots implements the availability scenario: a
// banded per-slot view of one day, computed against the current
// booking list and the clock.
package get_available_slots

import (
	"context"

	"github.com/abarriera/CPA-BookingService/internal/availability"
	"github.com/abarriera/CPA-BookingService/internal/domain"
)

// Usecase сценарий получения доступных слотов
type Usecase struct {
	store        BookingStore
	timeProvider TimeProvider
	log          Logger
}

// NewUsecase создает новый экземпляр Usecase
func NewUsecase(store BookingStore, timeProvider TimeProvider, log Logger) *Usecase {
	return &Usecase{
		store:        store,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute возвращает картину доступности на дату
func (u *Usecase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Проверка даты
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}

	now := u.timeProvider.Now()
	dateStr := domain.FormatLocalDate(req.Date)

	// 2. Прошедшие даты не предлагаются, слоты не раскрываются
	if !availability.IsDateSelectable(req.Date, now) {
		u.log.Info("get_available_slots: date=%s is in the past", dateStr)
		return &Response{
			Date:           dateStr,
			DateSelectable: false,
			Slots:          []availability.SlotInfo{},
		}, nil
	}

	// 3. Расчет по текущему списку записей
	bookings := u.store.All()
	resp := &Response{
		Date:           dateStr,
		DateSelectable: true,
		FullyBooked:    availability.IsFullyBooked(req.Date, bookings),
		Slots:          availability.DaySlots(req.Date, bookings, now),
	}

	u.log.Info("get_available_slots: date=%s fully_booked=%t", dateStr, resp.FullyBooked)
	return resp, nil
}
