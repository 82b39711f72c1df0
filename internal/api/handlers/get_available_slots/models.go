package get_available_slots

import (
	"github.com/abarriera/CPA-BookingService/internal/availability"
	getAvailableSlots "github.com/abarriera/CPA-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP model одного слота
type SlotResponse struct {
	Time       string `json:"time"`
	Band       string `json:"band"`
	Booked     bool   `json:"booked"`
	Past       bool   `json:"past"`
	Selectable bool   `json:"selectable"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date           string         `json:"date"`
	DateSelectable bool           `json:"dateSelectable"`
	FullyBooked    bool           `json:"fullyBooked"`
	Slots          []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:           resp.Date,
		DateSelectable: resp.DateSelectable,
		FullyBooked:    resp.FullyBooked,
		Slots:          SlotsFromInfo(resp.Slots),
	}
}

// SlotsFromInfo конвертирует расчетные слоты в HTTP модель
func SlotsFromInfo(slots []availability.SlotInfo) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			Time:       s.Label,
			Band:       string(s.Band),
			Booked:     s.Booked,
			Past:       s.Past,
			Selectable: s.Selectable,
		})
	}
	return out
}
