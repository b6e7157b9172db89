package hallservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hallservice client: internal error")

	// ErrUnavailable возвращается, когда сервис не ответил или ответил 5xx
	ErrUnavailable = errors.New("hallservice client: service unavailable")

	// ErrUnauthorized возвращается при отказе в доступе (неверный или истекший токен)
	ErrUnauthorized = errors.New("hallservice client: unauthorized")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("hallservice client: invalid response")
)
