package get_bookings

import (
	"net/http"

	"github.com/abarriera/CPA-BookingService/internal/api/handlers"
	"github.com/abarriera/CPA-BookingService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

// BookingsResponse HTTP response model
type BookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Total    int              `json:"total"`
}

type Handler struct {
	store  BookingStore
	logger Logger
}

func NewHandler(store BookingStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookings := h.store.All()

	// Опциональный фильтр по дате
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		if _, _, _, err := domain.ParseLocalDate(dateStr); err != nil {
			h.logger.Warn("GET /bookings - Failed to parse date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filtered := make([]domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.Date == dateStr {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}

	h.logger.Info("GET /bookings - Returning %d bookings", len(bookings))
	handlers.RespondJSON(w, http.StatusOK, BookingsResponse{
		Bookings: bookings,
		Total:    len(bookings),
	})
}
