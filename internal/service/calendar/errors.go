package calendar

import "errors"

var (
	// ErrInvalidParameters возвращается при некорректных году/месяце.
	// Это не «нет данных»: вызывающая сторона показывает отдельное сообщение.
	ErrInvalidParameters = errors.New("calendar: invalid parameters")
)
