// Package diagnostics exposes a plain environment self-check endpoint
// for debugging calendar sync setup without reading server logs.
package diagnostics

import (
	"encoding/json"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/abarriera/CPA-BookingService/internal/api/handlers"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// EnvironmentReport состояние переменных окружения календаря
type EnvironmentReport struct {
	HasCalendarID    bool   `json:"hasCalendarId"`
	HasCredentials   bool   `json:"hasCredentials"`
	CredentialsValid bool   `json:"credentialsValid"`
	CalendarID       string `json:"calendarId"`
	ServiceAccount   string `json:"serviceAccount"`
}

// DiagnosticsResponse HTTP response model
type DiagnosticsResponse struct {
	Status       string            `json:"status"`
	Environment  EnvironmentReport `json:"environment"`
	ErrorDetails string            `json:"errorDetails"`
	Timestamp    string            `json:"timestamp"`
	GoVersion    string            `json:"goVersion"`
}

// serviceAccountKey минимально необходимая часть ключа сервисного аккаунта
type serviceAccountKey struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/diagnostics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	calendarID := os.Getenv("GOOGLE_CALENDAR_ID")
	credentials := os.Getenv("GOOGLE_CREDENTIALS")

	report := EnvironmentReport{
		HasCalendarID:  calendarID != "",
		HasCredentials: credentials != "",
		CalendarID:     "NOT SET",
		ServiceAccount: "NOT SET",
	}
	if report.HasCalendarID {
		report.CalendarID = calendarID
	}

	var errorDetails string
	if credentials == "" {
		errorDetails = "GOOGLE_CREDENTIALS environment variable not set"
	} else {
		var key serviceAccountKey
		if err := json.Unmarshal([]byte(credentials), &key); err != nil {
			errorDetails = "Failed to parse credentials JSON: " + err.Error()
		} else {
			report.CredentialsValid = key.ClientEmail != "" && key.PrivateKey != ""
			if key.ClientEmail == "" {
				report.ServiceAccount = "MISSING"
				errorDetails += "Missing client_email. "
			} else {
				report.ServiceAccount = key.ClientEmail
			}
			if key.PrivateKey == "" {
				errorDetails += "Missing private_key. "
			}
		}
	}
	if errorDetails == "" {
		errorDetails = "All checks passed!"
	}

	h.logger.Info("GET /diagnostics - calendar_id=%t credentials=%t valid=%t",
		report.HasCalendarID, report.HasCredentials, report.CredentialsValid)
	handlers.RespondJSON(w, http.StatusOK, DiagnosticsResponse{
		Status:       "API is working!",
		Environment:  report,
		ErrorDetails: errorDetails,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		GoVersion:    runtime.Version(),
	})
}
