package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarriera/CPA-BookingService/internal/domain"
)

type fakePersistence struct {
	data    map[string][]byte
	saveErr error
	loadErr error
	saves   int
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{data: make(map[string][]byte)}
}

func (f *fakePersistence) Save(_ context.Context, key string, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.data[key] = append([]byte(nil), data...)
	return nil
}

func (f *fakePersistence) Load(_ context.Context, key string) ([]byte, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	data, ok := f.data[key]
	return data, ok, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id string) domain.Booking {
	return domain.Booking{
		ID:      id,
		Date:    "2025-03-10",
		Time:    "1:00 PM",
		Name:    "Ana Rivera",
		Email:   "ana@example.com",
		Phone:   "(939) 555-0101",
		Service: "Tax Preparation",
		Status:  domain.StatusPending,
	}
}

func TestNewStartsEmptyWithoutSnapshot(t *testing.T) {
	s := New(context.Background(), newFakePersistence(), "bookings", nopLogger{})
	assert.Empty(t, s.All())
	assert.Equal(t, 0, s.Count())
}

func TestNewDegradesOnCorruptSnapshot(t *testing.T) {
	p := newFakePersistence()
	p.data["bookings"] = []byte("{not json")

	s := New(context.Background(), p, "bookings", nopLogger{})
	assert.Empty(t, s.All())
}

func TestNewDegradesOnLoadError(t *testing.T) {
	p := newFakePersistence()
	p.loadErr = errors.New("connection refused")

	s := New(context.Background(), p, "bookings", nopLogger{})
	assert.Empty(t, s.All())
}

func TestNewNormalizesUnknownStatus(t *testing.T) {
	p := newFakePersistence()
	p.data["bookings"] = []byte(`[{"id":"booking-1","date":"2025-03-10","time":"1:00 PM","name":"Ana","email":"a@e.com","phone":"5","service":"Tax Preparation","status":"weird"}]`)

	s := New(context.Background(), p, "bookings", nopLogger{})
	got, ok := s.Get("booking-1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestAppendPersistsAndReloads(t *testing.T) {
	ctx := context.Background()
	p := newFakePersistence()

	s := New(ctx, p, "bookings", nopLogger{})
	s.Append(ctx, testBooking("booking-1"))
	s.Append(ctx, testBooking("booking-2"))

	require.Equal(t, 2, s.Count())
	assert.Equal(t, 2, p.saves)

	// A second store over the same persistence sees the same list
	reloaded := New(ctx, p, "bookings", nopLogger{})
	all := reloaded.All()
	require.Len(t, all, 2)
	assert.Equal(t, "booking-1", all[0].ID)
	assert.Equal(t, "booking-2", all[1].ID)
}

func TestAppendSurvivesWriteFailure(t *testing.T) {
	ctx := context.Background()
	p := newFakePersistence()
	p.saveErr = errors.New("disk full")

	s := New(ctx, p, "bookings", nopLogger{})
	s.Append(ctx, testBooking("booking-1"))

	// Write dropped, data still served from memory
	assert.Equal(t, 1, s.Count())
	assert.Empty(t, p.data)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	p := newFakePersistence()

	s := New(ctx, p, "bookings", nopLogger{})
	s.Append(ctx, testBooking("booking-1"))

	s.UpdateStatus(ctx, "booking-1", domain.StatusConfirmed)

	b, ok := s.Get("booking-1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
}

func TestUpdateStatusIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, newFakePersistence(), "bookings", nopLogger{})
	s.Append(ctx, testBooking("booking-1"))

	s.UpdateStatus(ctx, "booking-1", domain.StatusConfirmed)
	s.UpdateStatus(ctx, "booking-1", domain.StatusConfirmed)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, domain.StatusConfirmed, all[0].Status)
}

func TestUpdateStatusUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	p := newFakePersistence()
	s := New(ctx, p, "bookings", nopLogger{})
	s.Append(ctx, testBooking("booking-1"))
	savesBefore := p.saves

	s.UpdateStatus(ctx, "booking-missing", domain.StatusConfirmed)

	assert.Equal(t, savesBefore, p.saves)
	b, _ := s.Get("booking-1")
	assert.Equal(t, domain.StatusPending, b.Status)
}

func TestAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, newFakePersistence(), "bookings", nopLogger{})
	s.Append(ctx, testBooking("booking-1"))

	all := s.All()
	all[0].Status = domain.StatusCancelled

	b, _ := s.Get("booking-1")
	assert.Equal(t, domain.StatusPending, b.Status)
}
