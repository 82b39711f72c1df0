package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarriera/CPA-BookingService/internal/domain"
	submitBooking "github.com/abarriera/CPA-BookingService/internal/usecase/submit_booking"
)

type fakeUseCase struct {
	resp *submitBooking.Response
	err  error
	seen *submitBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
	f.seen = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"date": "2025-06-17",
	"time": "1:00 PM",
	"name": "Carlos Vega",
	"email": "carlos@example.com",
	"phone": "(939) 555-0144",
	"service": "Bookkeeping"
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	uc := &fakeUseCase{resp: &submitBooking.Response{
		Booking: domain.Booking{
			ID:     "booking-1750000000000",
			Date:   "2025-06-17",
			Time:   "1:00 PM",
			Status: domain.StatusConfirmed,
		},
		EventID:   "evt-1",
		EventLink: "https://calendar.example/evt-1",
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking-1750000000000", resp.Booking.ID)
	assert.False(t, resp.SyncWarning)
	assert.Equal(t, "https://calendar.example/evt-1", resp.EventLink)

	require.NotNil(t, uc.seen)
	assert.Equal(t, "2025-06-17", domain.FormatLocalDate(uc.seen.Date))
	assert.Equal(t, "1:00 PM", uc.seen.TimeSlot)
}

func TestHandleInvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})
	rec := doRequest(h, `{"date": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})
	rec := doRequest(h, strings.Replace(validBody, "2025-06-17", "17.06.2025", 1))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleValidationErrorsPerField(t *testing.T) {
	verrs := submitBooking.ValidationErrors{
		"email":   "Email is invalid",
		"service": "Please select a service",
	}
	uc := &fakeUseCase{err: fmt.Errorf("%w: %w", submitBooking.ErrInvalidInput, verrs)}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validBody)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string            `json:"error"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgValidationFailed, resp.Error)
	assert.Equal(t, "Email is invalid", resp.Errors["email"])
	assert.Equal(t, "Please select a service", resp.Errors["service"])
}

func TestHandleInternalError(t *testing.T) {
	uc := &fakeUseCase{err: submitBooking.ErrInternal}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
