package contact

import (
	"time"

	"github.com/abarriera/CPA-BookingService/internal/integrations/resend"
)

// ContactRequest HTTP request model
type ContactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"` // RFC 3339, опционально
}

// ContactResponse HTTP response model
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactErrorResponse тело ответа при отсутствии обязательных полей
type ContactErrorResponse struct {
	Error    string   `json:"error"`
	Required []string `json:"required,omitempty"`
}

// ToSubmission конвертирует HTTP запрос в модель интеграции.
// Отсутствующая или некорректная метка времени заменяется на текущую.
func (r *ContactRequest) ToSubmission(now time.Time) resend.ContactSubmission {
	ts := now
	if r.Timestamp != "" {
		if parsed, err := time.Parse(time.RFC3339, r.Timestamp); err == nil {
			ts = parsed
		}
	}

	return resend.ContactSubmission{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Service:   r.Service,
		Message:   r.Message,
		Timestamp: ts,
	}
}
