// Package get_services exposes the fixed catalog of consultation
// services the firm offers. The booking form builds its select options
// from this list.
package get_services

import (
	"net/http"

	"github.com/abarriera/CPA-BookingService/internal/api/handlers"
	"github.com/abarriera/CPA-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []string `json:"services"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ServicesResponse{
		Services: domain.Services(),
	})
}
