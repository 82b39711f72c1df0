package submit_booking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abarriera/CPA-BookingService/internal/domain"
)

// Request данные формы записи на прием
type Request struct {
	Date     time.Time
	TimeSlot string
	Name     string
	Email    string
	Phone    string
	Service  string
	Notes    string
}

// Response результат обработки записи
type Response struct {
	Booking     domain.Booking
	SyncWarning bool
	EventID     string
	EventLink   string
}

// ValidationErrors ошибки валидации по полям формы
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return fmt.Sprintf("submit_booking.usecase: validation failed: %s", strings.Join(parts, "; "))
}
