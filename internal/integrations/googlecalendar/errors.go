package googlecalendar

import "errors"

var (
	// ErrAccessDenied возвращается, когда календарь не расшарен на сервисный аккаунт
	ErrAccessDenied = errors.New("googlecalendar client: calendar access denied")

	// ErrCalendarNotFound возвращается при некорректном calendar ID
	ErrCalendarNotFound = errors.New("googlecalendar client: calendar not found")

	// ErrInvalidBooking возвращается, когда бронирование нельзя превратить в событие
	ErrInvalidBooking = errors.New("googlecalendar client: invalid booking")

	// ErrNotConfigured возвращается, когда клиент создан без настроек окружения
	ErrNotConfigured = errors.New("googlecalendar client: not configured")

	// ErrSync возвращается при прочих ошибках вызова Calendar API
	ErrSync = errors.New("googlecalendar client: sync failed")
)
