package googlecalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/abarriera/CPA-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с Google Calendar API
type Client struct {
	svc        *calendar.Service
	calendarID string
	timezone   string
	timeout    time.Duration
	log        Logger
}

// NewClient creates a calendar client authenticated with service
// account credentials (the raw JSON key).
func NewClient(ctx context.Context, credentialsJSON []byte, calendarID, timezone string, timeout time.Duration, log Logger) (*Client, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(calendar.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create service: %v", ErrSync, err)
	}

	return &Client{
		svc:        svc,
		calendarID: calendarID,
		timezone:   timezone,
		timeout:    timeout,
		log:        log,
	}, nil
}

// NewDisabledClient returns a client whose every call fails with
// ErrNotConfigured. Used when the calendar environment is missing so
// the rest of the service still starts; callers already treat sync
// failures as non-fatal.
func NewDisabledClient(reason string, log Logger) *Client {
	log.Warn("googlecalendar: client disabled: %s", reason)
	return &Client{log: log}
}

// CreateEvent inserts the booking as a calendar event and classifies
// the outcome. Classification only drives user-facing messaging; local
// store behavior is the same on any failure.
func (c *Client) CreateEvent(ctx context.Context, booking *domain.Booking) (*CreatedEvent, error) {
	if c.svc == nil {
		return nil, ErrNotConfigured
	}

	event, err := BuildEvent(booking, c.timezone)
	if err != nil {
		return nil, err
	}

	c.log.Info("googlecalendar: creating event for booking id=%s start=%s tz=%s",
		booking.ID, event.Start.DateTime, c.timezone)

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	created, err := c.svc.Events.Insert(c.calendarID, event).Context(callCtx).Do()
	if err != nil {
		return nil, c.classify(err)
	}

	c.log.Info("googlecalendar: event created id=%s for booking id=%s", created.Id, booking.ID)
	return &CreatedEvent{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}

func (c *Client) classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusForbidden:
			c.log.Error("googlecalendar: access denied for calendar id=%s: %v", c.calendarID, err)
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		case http.StatusNotFound:
			c.log.Error("googlecalendar: calendar id=%s not found: %v", c.calendarID, err)
			return fmt.Errorf("%w: %v", ErrCalendarNotFound, err)
		}
	}
	c.log.Error("googlecalendar: event insert failed: %v", err)
	return fmt.Errorf("%w: %v", ErrSync, err)
}
