package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func submission() ContactSubmission {
	return ContactSubmission{
		Name:      "Ana Rivera",
		Email:     "ana@example.com",
		Phone:     "(939) 555-0101",
		Service:   "Tax Preparation",
		Message:   "Need help with\nmy return",
		Timestamp: time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC),
	}
}

func TestSendContactEmail(t *testing.T) {
	var got emailRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer srv.Close()

	c := NewClient("re_test_key", "onboarding@resend.dev", "firm@example.com", 5*time.Second, nopLogger{})
	c.baseURL = srv.URL

	err := c.SendContactEmail(context.Background(), submission())
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test_key", auth)
	assert.Equal(t, "onboarding@resend.dev", got.From)
	assert.Equal(t, "firm@example.com", got.To)
	assert.Equal(t, "New Contact Form Submission from Ana Rivera", got.Subject)
	assert.Equal(t, "ana@example.com", got.ReplyTo)
	assert.Contains(t, got.HTML, "<strong>From:</strong> Ana Rivera")
	assert.Contains(t, got.HTML, "Need help with<br>my return")
}

func TestSendContactEmailOmitsEmptyOptionalFields(t *testing.T) {
	var got emailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer srv.Close()

	c := NewClient("re_test_key", "onboarding@resend.dev", "firm@example.com", 5*time.Second, nopLogger{})
	c.baseURL = srv.URL

	sub := submission()
	sub.Phone = ""
	sub.Service = ""
	require.NoError(t, c.SendContactEmail(context.Background(), sub))

	assert.NotContains(t, got.HTML, "Phone")
	assert.NotContains(t, got.HTML, "Service Interest")
}

func TestSendContactEmailClassifiesFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("re_bad_key", "onboarding@resend.dev", "firm@example.com", 5*time.Second, nopLogger{})
	c.baseURL = srv.URL

	err := c.SendContactEmail(context.Background(), submission())
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestSendContactEmailWithoutKey(t *testing.T) {
	c := NewClient("", "onboarding@resend.dev", "firm@example.com", 5*time.Second, nopLogger{})
	err := c.SendContactEmail(context.Background(), submission())
	assert.ErrorIs(t, err, ErrNotConfigured)
}
