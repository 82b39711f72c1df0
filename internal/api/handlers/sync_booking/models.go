package sync_booking

import (
	"github.com/abarriera/CPA-BookingService/internal/domain"
)

// SyncBookingRequest HTTP request model
type SyncBookingRequest struct {
	Booking BookingPayload `json:"booking"`
}

// BookingPayload запись в том виде, в котором ее прислал клиент
type BookingPayload struct {
	ID      string `json:"id"`
	Date    string `json:"date"` // "2025-06-17"
	Time    string `json:"time"` // "1:00 PM"
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Notes   string `json:"notes,omitempty"`
}

// SyncBookingResponse HTTP response model
type SyncBookingResponse struct {
	Success   bool   `json:"success"`
	EventID   string `json:"eventId"`
	EventLink string `json:"eventLink"`
	Message   string `json:"message"`
}

// ToDomain конвертирует HTTP запрос в доменную модель
func (p *BookingPayload) ToDomain() *domain.Booking {
	return &domain.Booking{
		ID:      p.ID,
		Date:    p.Date,
		Time:    p.Time,
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Service: p.Service,
		Notes:   p.Notes,
		Status:  domain.StatusPending,
	}
}
