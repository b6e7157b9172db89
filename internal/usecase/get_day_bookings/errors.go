package get_day_bookings

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате (ожидается YYYY-MM-DD)
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
