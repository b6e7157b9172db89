package session

import (
	"strings"
	"time"
)

// Theme тема оформления интерфейса
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dtao"

	DefaultTheme = ThemeLight
)

// ParseTheme проверяет название темы (без учета регистра)
func ParseTheme(raw string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(raw))); t {
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", ErrInvalidTheme
	}
}

// EventKind тип события сессии
type EventKind string

const (
	EventLogout EventKind = "logout"
	EventTheme  EventKind = "theme"
)

// Event событие, рассылаемое подписчикам
type Event struct {
	Kind    EventKind `json:"kind"`
	Theme   Theme     `json:"theme,omitempty"`
	Reason  string    `json:"reason,omitempty"` // Для logout: роль или причина выхода
	Version uint64    `json:"version"`
	At      time.Time `json:"at"`
}

// Context снимок состояния сессии
type Context struct {
	Theme        Theme      `json:"theme"`
	LoggedOut    bool       `json:"loggedOut"`
	LogoutReason string     `json:"logoutReason,omitempty"`
	LoggedOutAt  *time.Time `json:"loggedOutAt,omitempty"`
	Version      uint64     `json:"version"`
	Subscribers  int        `json:"subscribers"`
}
