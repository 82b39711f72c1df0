package openrouter

import "errors"

var (
	// ErrNotConfigured ключ API не задан, клиент не может выполнять запросы
	ErrNotConfigured = errors.New("openrouter.client: API key is not configured")
	// ErrInternal внутренняя ошибка клиента
	ErrInternal = errors.New("openrouter.client: internal error")
	// ErrUpstream API вернул ошибку или некорректный ответ
	ErrUpstream = errors.New("openrouter.client: upstream error")
)
