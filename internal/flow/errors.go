package flow

import "errors"

var (
	// ErrInvalidTransition операция не разрешена в текущем состоянии
	ErrInvalidTransition = errors.New("flow: invalid transition")
	// ErrDateNotSelectable дата в прошлом или полностью занята
	ErrDateNotSelectable = errors.New("flow: date is not selectable")
	// ErrSlotNotSelectable слот занят, в прошлом или неизвестен
	ErrSlotNotSelectable = errors.New("flow: slot is not selectable")
	// ErrSessionNotFound сессия не существует или уже закрыта
	ErrSessionNotFound = errors.New("flow: session not found")
)
