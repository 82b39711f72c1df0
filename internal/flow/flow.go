// Package flow drives one client's booking session as a small state
// machine: pick a date, pick a time, fill the form, confirm. Every
// step re-checks availability so a stale view cannot walk the client
// into a dead end.
package flow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/abarriera/CPA-BookingService/internal/availability"
	"github.com/abarriera/CPA-BookingService/internal/domain"
	"github.com/abarriera/CPA-BookingService/internal/usecase/submit_booking"
)

// State состояние сессии записи
type State string

const (
	StateSelectingDate State = "selecting_date"
	StateSelectingTime State = "selecting_time"
	StateFillingForm   State = "filling_form"
	StateConfirmed     State = "confirmed"
)

// FormData данные контактной формы на шаге заполнения
type FormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Notes   string `json:"notes"`
}

// Snapshot внешнее представление текущего состояния сессии
type Snapshot struct {
	State       State                   `json:"state"`
	Date        string                  `json:"date,omitempty"`
	TimeSlot    string                  `json:"time,omitempty"`
	Slots       []availability.SlotInfo `json:"slots,omitempty"`
	Booking     *domain.Booking         `json:"booking,omitempty"`
	SyncWarning bool                    `json:"syncWarning,omitempty"`
	EventLink   string                  `json:"eventLink,omitempty"`
}

// Flow одна сессия записи на прием
type Flow struct {
	store        BookingStore
	submitter    Submitter
	timeProvider TimeProvider
	log          Logger

	mu       sync.Mutex
	state    State
	date     time.Time
	timeSlot string
	result   *submit_booking.Response
}

// New создает сессию в начальном состоянии выбора даты
func New(store BookingStore, submitter Submitter, timeProvider TimeProvider, log Logger) *Flow {
	return &Flow{
		store:        store,
		submitter:    submitter,
		timeProvider: timeProvider,
		log:          log,
		state:        StateSelectingDate,
	}
}

// Snapshot возвращает текущее состояние сессии
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// SelectDate фиксирует дату и открывает выбор времени
func (f *Flow) SelectDate(_ context.Context, date time.Time) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSelectingDate && f.state != StateSelectingTime {
		return f.snapshotLocked(), fmt.Errorf("%w: SelectDate in state %s", ErrInvalidTransition, f.state)
	}

	now := f.timeProvider.Now()
	if !availability.IsDateSelectable(date, now) {
		return f.snapshotLocked(), fmt.Errorf("%w: date %s is in the past", ErrDateNotSelectable, domain.FormatLocalDate(date))
	}
	if availability.IsFullyBooked(date, f.store.All()) {
		return f.snapshotLocked(), fmt.Errorf("%w: date %s is fully booked", ErrDateNotSelectable, domain.FormatLocalDate(date))
	}

	f.date = date
	f.timeSlot = ""
	f.state = StateSelectingTime
	f.log.Info("flow: date selected %s", domain.FormatLocalDate(date))
	return f.snapshotLocked(), nil
}

// SelectTime фиксирует слот и открывает форму
func (f *Flow) SelectTime(_ context.Context, label string) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateSelectingTime {
		return f.snapshotLocked(), fmt.Errorf("%w: SelectTime in state %s", ErrInvalidTransition, f.state)
	}

	now := f.timeProvider.Now()
	if !availability.IsSlotSelectable(f.date, label, f.store.All(), now) {
		return f.snapshotLocked(), fmt.Errorf("%w: %q on %s", ErrSlotNotSelectable, label, domain.FormatLocalDate(f.date))
	}

	f.timeSlot = label
	f.state = StateFillingForm
	f.log.Info("flow: slot selected %q on %s", label, domain.FormatLocalDate(f.date))
	return f.snapshotLocked(), nil
}

// Back возвращает сессию на предыдущий шаг
func (f *Flow) Back(_ context.Context) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateFillingForm:
		f.timeSlot = ""
		f.state = StateSelectingTime
	case StateSelectingTime:
		f.date = time.Time{}
		f.state = StateSelectingDate
	default:
		return f.snapshotLocked(), fmt.Errorf("%w: Back in state %s", ErrInvalidTransition, f.state)
	}
	return f.snapshotLocked(), nil
}

// Submit оформляет запись по собранным данным
func (f *Flow) Submit(ctx context.Context, form FormData) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFillingForm {
		return f.snapshotLocked(), fmt.Errorf("%w: Submit in state %s", ErrInvalidTransition, f.state)
	}

	resp, err := f.submitter.Execute(ctx, &submit_booking.Request{
		Date:     f.date,
		TimeSlot: f.timeSlot,
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Service:  form.Service,
		Notes:    form.Notes,
	})
	if err != nil {
		// Форма остается открытой, клиент исправляет и повторяет
		return f.snapshotLocked(), err
	}

	f.result = resp
	f.state = StateConfirmed
	f.log.Info("flow: booking id=%s confirmed sync_warning=%t", resp.Booking.ID, resp.SyncWarning)
	return f.snapshotLocked(), nil
}

// Cancel закрывает форму и возвращает сессию к выбору времени
func (f *Flow) Cancel(_ context.Context) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFillingForm {
		return f.snapshotLocked(), fmt.Errorf("%w: Cancel in state %s", ErrInvalidTransition, f.state)
	}

	f.timeSlot = ""
	f.state = StateSelectingTime
	return f.snapshotLocked(), nil
}

// Close завершает подтвержденную запись и сбрасывает сессию к выбору даты.
// Запись в хранилище не трогает, можно сразу оформлять следующую.
func (f *Flow) Close(_ context.Context) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateConfirmed {
		return f.snapshotLocked(), fmt.Errorf("%w: Close in state %s", ErrInvalidTransition, f.state)
	}

	f.date = time.Time{}
	f.timeSlot = ""
	f.result = nil
	f.state = StateSelectingDate
	return f.snapshotLocked(), nil
}

func (f *Flow) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:    f.state,
		TimeSlot: f.timeSlot,
	}
	if !f.date.IsZero() {
		snap.Date = domain.FormatLocalDate(f.date)
	}
	if f.state == StateSelectingTime {
		snap.Slots = availability.DaySlots(f.date, f.store.All(), f.timeProvider.Now())
	}
	if f.result != nil {
		b := f.result.Booking
		snap.Booking = &b
		snap.SyncWarning = f.result.SyncWarning
		snap.EventLink = f.result.EventLink
	}
	return snap
}
