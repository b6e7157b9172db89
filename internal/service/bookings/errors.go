package bookings

import "errors"

var (
	// ErrSourceUnavailable возвращается, когда источник заявок не ответил
	ErrSourceUnavailable = errors.New("bookings service: source unavailable")
)
