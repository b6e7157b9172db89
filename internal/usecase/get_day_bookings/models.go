package get_day_bookings

import (
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/calendar"
)

// Request модель запроса бронирований дня
type Request struct {
	Date  string `validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Venue string `validate:"max=200"`                      // Название или ID площадки, пусто значит все
}

// Response модель ответа
type Response struct {
	Date      time.Time
	Venue     string
	Items     []calendar.DayDetailItem // Только APPROVED, в порядке источника
	Occupancy calendar.Occupancy
}
