package get_session

import "github.com/m04kA/SMC-VenueCalendar/internal/service/session"

type SessionHub interface {
	Snapshot() session.Context
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
