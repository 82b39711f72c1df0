package booking_flow

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/abarriera/CPA-BookingService/internal/api/handlers"
	"github.com/abarriera/CPA-BookingService/internal/domain"
	"github.com/abarriera/CPA-BookingService/internal/flow"
	submitBooking "github.com/abarriera/CPA-BookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSessionNotFound    = "сессия не найдена"
	msgValidationFailed   = "данные формы не прошли проверку"
	msgInvalidTransition  = "операция недоступна на текущем шаге"
	msgDateNotSelectable  = "дата недоступна для записи"
	msgSlotNotSelectable  = "выбранное время недоступно"
)

type Handler struct {
	sessions SessionManager
	logger   Logger
}

func NewHandler(sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// HandleStart POST /api/v1/flow
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	id, f := h.sessions.Start()
	h.logger.Info("POST /flow - Session started id=%s", id)
	handlers.RespondJSON(w, http.StatusCreated, FromSnapshot(id, f.Snapshot()))
}

// HandleState GET /api/v1/flow/{sessionId}
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.session(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(id, f.Snapshot()))
}

// HandleSelectDate POST /api/v1/flow/{sessionId}/date
func (h *Handler) HandleSelectDate(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flow/%s/date - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /flow/%s/date - Failed to parse date %q: %v", id, req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	snap, err := f.SelectDate(r.Context(), date)
	if err != nil {
		h.respondFlowError(w, id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(id, snap))
}

// HandleSelectTime POST /api/v1/flow/{sessionId}/time
func (h *Handler) HandleSelectTime(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flow/%s/time - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := f.SelectTime(r.Context(), req.Time)
	if err != nil {
		h.respondFlowError(w, id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(id, snap))
}

// HandleBack POST /api/v1/flow/{sessionId}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.session(w, r)
	if !ok {
		return
	}

	snap, err := f.Back(r.Context())
	if err != nil {
		h.respondFlowError(w, id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(id, snap))
}

// HandleSubmit POST /api/v1/flow/{sessionId}/submit
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flow/%s/submit - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	snap, err := f.Submit(r.Context(), req.ToSubmitForm())
	if err != nil {
		if errors.Is(err, submitBooking.ErrInvalidInput) {
			h.logger.Warn("POST /flow/%s/submit - Validation failed: %v", id, err)
			var fieldErrs submitBooking.ValidationErrors
			if errors.As(err, &fieldErrs) {
				handlers.RespondValidationErrors(w, msgValidationFailed, fieldErrs)
			} else {
				handlers.RespondBadRequest(w, err.Error())
			}
			return
		}
		h.respondFlowError(w, id, err)
		return
	}

	h.logger.Info("POST /flow/%s/submit - Booking confirmed id=%s", id, snap.Booking.ID)
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(id, snap))
}

// HandleCancel POST /api/v1/flow/{sessionId}/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.session(w, r)
	if !ok {
		return
	}

	snap, err := f.Cancel(r.Context())
	if err != nil {
		h.respondFlowError(w, id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(id, snap))
}

// HandleClose POST /api/v1/flow/{sessionId}/close
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	id, f, ok := h.session(w, r)
	if !ok {
		return
	}

	snap, err := f.Close(r.Context())
	if err != nil {
		h.respondFlowError(w, id, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromSnapshot(id, snap))
}

// HandleEnd DELETE /api/v1/flow/{sessionId}
func (h *Handler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]
	if err := h.sessions.Close(id); err != nil {
		h.logger.Warn("DELETE /flow/%s - Session not found", id)
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}
	h.logger.Info("DELETE /flow/%s - Session closed", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, *flow.Flow, bool) {
	id := mux.Vars(r)["sessionId"]
	f, err := h.sessions.Get(id)
	if err != nil {
		h.logger.Warn("flow - Session not found id=%s", id)
		handlers.RespondNotFound(w, msgSessionNotFound)
		return id, nil, false
	}
	return id, f, true
}

func (h *Handler) respondFlowError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, flow.ErrInvalidTransition):
		h.logger.Warn("flow - Invalid transition session=%s: %v", id, err)
		handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

	case errors.Is(err, flow.ErrDateNotSelectable):
		h.logger.Warn("flow - Date not selectable session=%s: %v", id, err)
		handlers.RespondError(w, http.StatusConflict, msgDateNotSelectable)

	case errors.Is(err, flow.ErrSlotNotSelectable):
		h.logger.Warn("flow - Slot not selectable session=%s: %v", id, err)
		handlers.RespondError(w, http.StatusConflict, msgSlotNotSelectable)

	default:
		h.logger.Error("flow - Unexpected error session=%s: %v", id, err)
		handlers.RespondInternalError(w)
	}
}
