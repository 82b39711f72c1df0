package resend

import "errors"

var (
	// ErrNotConfigured возвращается, когда API ключ не задан
	ErrNotConfigured = errors.New("resend client: not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("resend client: internal error")

	// ErrSendFailed возвращается при неуспешном ответе Resend API
	ErrSendFailed = errors.New("resend client: failed to send email")
)
