package create_booking

import (
	"errors"
	"net/http"

	"github.com/abarriera/CPA-BookingService/internal/api/handlers"
	submitBooking "github.com/abarriera/CPA-BookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgValidationFailed   = "данные формы не прошли проверку"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			var fieldErrs submitBooking.ValidationErrors
			if errors.As(err, &fieldErrs) {
				handlers.RespondValidationErrors(w, msgValidationFailed, fieldErrs)
			} else {
				handlers.RespondBadRequest(w, err.Error())
			}

		default:
			h.logger.Error("POST /bookings - Failed to submit booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking submitted: booking_id=%s sync_warning=%t",
		result.Booking.ID, result.SyncWarning)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
