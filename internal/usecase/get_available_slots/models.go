package get_available_slots

import (
	"time"

	"github.com/abarriera/CPA-BookingService/internal/availability"
)

// Request запрос доступности на конкретную дату
type Request struct {
	Date time.Time
}

// Response картина дня для выбранной даты
type Response struct {
	Date           string
	DateSelectable bool
	FullyBooked    bool
	Slots          []availability.SlotInfo
}
