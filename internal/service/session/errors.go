package session

import "errors"

var (
	// ErrInvalidTheme возвращается для неизвестной темы оформления
	ErrInvalidTheme = errors.New("session: invalid theme")

	// ErrHubClosed возвращается при подписке на закрытый hub
	ErrHubClosed = errors.New("session: hub closed")
)
