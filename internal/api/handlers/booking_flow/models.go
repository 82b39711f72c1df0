package booking_flow

import (
	"github.com/abarriera/CPA-BookingService/internal/domain"
	"github.com/abarriera/CPA-BookingService/internal/flow"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2025-06-17"
}

// SelectTimeRequest HTTP request model
type SelectTimeRequest struct {
	Time string `json:"time"` // "1:00 PM"
}

// SubmitRequest HTTP request model
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Notes   string `json:"notes,omitempty"`
}

// SlotResponse HTTP model одного слота
type SlotResponse struct {
	Time       string `json:"time"`
	Band       string `json:"band"`
	Booked     bool   `json:"booked"`
	Past       bool   `json:"past"`
	Selectable bool   `json:"selectable"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	SessionID   string          `json:"sessionId"`
	State       string          `json:"state"`
	Date        string          `json:"date,omitempty"`
	Time        string          `json:"time,omitempty"`
	Slots       []SlotResponse  `json:"slots,omitempty"`
	Booking     *domain.Booking `json:"booking,omitempty"`
	SyncWarning bool            `json:"syncWarning,omitempty"`
	EventLink   string          `json:"eventLink,omitempty"`
}

// ToSubmitForm конвертирует HTTP запрос в форму сценария
func (r *SubmitRequest) ToSubmitForm() flow.FormData {
	return flow.FormData{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Service: r.Service,
		Notes:   r.Notes,
	}
}

// FromSnapshot конвертирует состояние сессии в HTTP response
func FromSnapshot(sessionID string, snap flow.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		SessionID:   sessionID,
		State:       string(snap.State),
		Date:        snap.Date,
		Time:        snap.TimeSlot,
		Booking:     snap.Booking,
		SyncWarning: snap.SyncWarning,
		EventLink:   snap.EventLink,
	}
	for _, s := range snap.Slots {
		resp.Slots = append(resp.Slots, SlotResponse{
			Time:       s.Label,
			Band:       string(s.Band),
			Booked:     s.Booked,
			Past:       s.Past,
			Selectable: s.Selectable,
		})
	}
	return resp
}
