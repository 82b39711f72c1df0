package openrouter

import "strings"

// Hints подсказки для интерфейса, извлеченные из текста ответа
type Hints struct {
	SuggestBooking bool
	SuggestContact bool
}

// Trigger tables are ordered for readability only; matching is a plain
// case-insensitive substring scan over the reply text.
var bookingTriggers = []string{
	"cita",
	"consulta",
	"programar",
	"agendar",
	"reunión",
}

var contactTriggers = []string{
	"contacta",
	"llama",
	"teléfono",
	"email",
	"939-608",
}

// DeriveHints сканирует текст ответа ассистента и выставляет подсказки
func DeriveHints(reply string) Hints {
	lower := strings.ToLower(reply)

	var h Hints
	for _, trigger := range bookingTriggers {
		if strings.Contains(lower, trigger) {
			h.SuggestBooking = true
			break
		}
	}
	for _, trigger := range contactTriggers {
		if strings.Contains(lower, trigger) {
			h.SuggestContact = true
			break
		}
	}
	return h
}
