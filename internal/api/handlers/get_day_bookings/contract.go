package get_day_bookings

import (
	"context"

	getDayBookings "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_day_bookings"
)

type GetDayBookingsUseCase interface {
	Execute(ctx context.Context, req *getDayBookings.Request) (*getDayBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
