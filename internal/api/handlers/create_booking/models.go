package create_booking

import (
	"time"

	"github.com/abarriera/CPA-BookingService/internal/domain"
	submitBooking "github.com/abarriera/CPA-BookingService/internal/usecase/submit_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date    string `json:"date"` // "2025-06-17"
	Time    string `json:"time"` // "1:00 PM"
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Notes   string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking     domain.Booking `json:"booking"`
	SyncWarning bool           `json:"syncWarning"`
	EventID     string         `json:"eventId,omitempty"`
	EventLink   string         `json:"eventLink,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*submitBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		Date:     date,
		TimeSlot: r.Time,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Service:  r.Service,
		Notes:    r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:     resp.Booking,
		SyncWarning: resp.SyncWarning,
		EventID:     resp.EventID,
		EventLink:   resp.EventLink,
	}
}
