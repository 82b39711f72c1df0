package submit_booking

import "errors"

var (
	// ErrInvalidInput данные формы не прошли валидацию
	ErrInvalidInput = errors.New("submit_booking.usecase: invalid input")
	// ErrInternal внутренняя ошибка сценария
	ErrInternal = errors.New("submit_booking.usecase: internal error")
)
