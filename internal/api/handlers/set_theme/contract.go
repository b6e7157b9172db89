package set_theme

import "github.com/m04kA/SMC-VenueCalendar/internal/service/session"

type SessionHub interface {
	SetTheme(theme session.Theme) (session.Event, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
