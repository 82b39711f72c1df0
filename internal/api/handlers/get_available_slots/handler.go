package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/abarriera/CPA-BookingService/internal/api/handlers"
	"github.com/abarriera/CPA-BookingService/internal/domain"
	getAvailableSlots "github.com/abarriera/CPA-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "не указан параметр date"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Failed to parse date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /availability - Invalid date %q", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - date=%s selectable=%t fully_booked=%t",
		result.Date, result.DateSelectable, result.FullyBooked)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
