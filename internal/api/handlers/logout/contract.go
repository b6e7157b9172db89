package logout

import "github.com/m04kA/SMC-VenueCalendar/internal/service/session"

type SessionHub interface {
	Logout(reason string) session.Event
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
