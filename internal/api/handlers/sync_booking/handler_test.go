package sync_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarriera/CPA-BookingService/internal/domain"
	"github.com/abarriera/CPA-BookingService/internal/integrations/googlecalendar"
)

type fakeCalendar struct {
	event *googlecalendar.CreatedEvent
	err   error
	seen  *domain.Booking
}

func (f *fakeCalendar) CreateEvent(_ context.Context, b *domain.Booking) (*googlecalendar.CreatedEvent, error) {
	f.seen = b
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"booking": {
		"id": "booking-1750000000000",
		"date": "2025-06-17",
		"time": "1:00 PM",
		"name": "Carlos Vega",
		"email": "carlos@example.com",
		"phone": "(939) 555-0144",
		"service": "Bookkeeping",
		"notes": "First consultation"
	}
}`

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	cal := &fakeCalendar{event: &googlecalendar.CreatedEvent{ID: "evt-1", HTMLLink: "https://calendar.example/evt-1"}}
	h := NewHandler(cal, nopLogger{})

	rec := doRequest(h, validBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SyncBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "evt-1", resp.EventID)
	assert.Equal(t, "https://calendar.example/evt-1", resp.EventLink)
	assert.Equal(t, "Booking confirmed and added to calendar!", resp.Message)

	require.NotNil(t, cal.seen)
	assert.Equal(t, "booking-1750000000000", cal.seen.ID)
	assert.Equal(t, "1:00 PM", cal.seen.Time)
}

func TestHandleInvalidBody(t *testing.T) {
	h := NewHandler(&fakeCalendar{}, nopLogger{})
	rec := doRequest(h, `{"booking": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid booking payload",
			err:        googlecalendar.ErrInvalidBooking,
			wantStatus: http.StatusBadRequest,
			wantError:  msgInvalidBooking,
		},
		{
			name:       "not configured",
			err:        googlecalendar.ErrNotConfigured,
			wantStatus: http.StatusInternalServerError,
			wantError:  msgNotConfigured,
		},
		{
			name:       "access denied",
			err:        googlecalendar.ErrAccessDenied,
			wantStatus: http.StatusInternalServerError,
			wantError:  msgAccessDenied,
		},
		{
			name:       "calendar not found",
			err:        googlecalendar.ErrCalendarNotFound,
			wantStatus: http.StatusInternalServerError,
			wantError:  msgNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeCalendar{err: tt.err}, nopLogger{})
			rec := doRequest(h, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp["error"])
		})
	}
}

func TestHandleGenericSyncFailure(t *testing.T) {
	h := NewHandler(&fakeCalendar{err: googlecalendar.ErrSync}, nopLogger{})
	rec := doRequest(h, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Failed to sync with calendar:")
}
