package export_calendar

import "errors"

var (
	// ErrInvalidParameters возвращается при некорректных году, месяце или perCell
	ErrInvalidParameters = errors.New("invalid export parameters")

	// ErrVenueNotFound возвращается, когда площадки нет в списке источника
	ErrVenueNotFound = errors.New("venue not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
