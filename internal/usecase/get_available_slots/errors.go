package get_available_slots

import "errors"

var (
	// ErrInvalidDate дата запроса не распознана
	ErrInvalidDate = errors.New("get_available_slots.usecase: invalid date")
)
