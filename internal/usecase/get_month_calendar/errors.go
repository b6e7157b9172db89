package get_month_calendar

import "errors"

var (
	// ErrInvalidParameters возвращается при некорректных году, месяце или фильтрах
	ErrInvalidParameters = errors.New("invalid calendar parameters")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
