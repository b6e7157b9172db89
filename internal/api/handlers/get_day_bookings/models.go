package get_day_bookings

import (
	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/bookings/models"
	getDayBookings "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_day_bookings"
)

// DayBookingsResponse HTTP response model
type DayBookingsResponse struct {
	Date            string       `json:"date"`
	Venue           string       `json:"venue,omitempty"`
	BookingCount    int          `json:"bookingCount"`
	OccupiedMinutes int          `json:"occupiedMinutes"`
	PercentFull     int          `json:"percentFull"`
	HasConflict     bool         `json:"hasConflict"`
	Items           []DetailItem `json:"items"`
}

// DetailItem бронирование в списке дня
type DetailItem struct {
	Key       string                 `json:"key"`
	Title     string                 `json:"title"`
	TimeRange string                 `json:"timeRange"`
	Start     string                 `json:"start,omitempty"` // HH:MM
	End       string                 `json:"end,omitempty"`
	Booking   models.BookingResponse `json:"booking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayBookings.Response) *DayBookingsResponse {
	items := make([]DetailItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = DetailItem{
			Key:       item.Key,
			Title:     item.Title,
			TimeRange: item.TimeRange,
			Start:     item.Start.String(),
			End:       item.End.String(),
			Booking:   models.FromDomainBooking(&item.Booking),
		}
	}

	return &DayBookingsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		Venue:           resp.Venue,
		BookingCount:    resp.Occupancy.BookingCount,
		OccupiedMinutes: resp.Occupancy.OccupiedMinutes,
		PercentFull:     resp.Occupancy.PercentFull,
		HasConflict:     resp.Occupancy.HasConflict(),
		Items:           items,
	}
}
