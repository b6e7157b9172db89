package get_month_calendar

import (
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/calendar"
	getMonthCalendar "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_month_calendar"
)

// MonthCalendarResponse HTTP response model
type MonthCalendarResponse struct {
	Year          int        `json:"year"`
	Month         int        `json:"month"`
	Venue         string     `json:"venue,omitempty"`
	Department    string     `json:"department,omitempty"`
	LeadingBlanks int        `json:"leadingBlanks"`
	Cells         []*DayCell `json:"cells"` // null для ведущих пустых ячеек
}

// DayCell ячейка дня
type DayCell struct {
	Date            string                   `json:"date"`
	BookingCount    int                      `json:"bookingCount"`
	OccupiedMinutes int                      `json:"occupiedMinutes"`
	PercentFull     int                      `json:"percentFull"`
	OverlapMinutes  int                      `json:"overlapMinutes"`
	HasConflict     bool                     `json:"hasConflict"`
	Free            bool                     `json:"free"`
	IsFull          bool                     `json:"isFull"`
	Bookings        []models.BookingResponse `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthCalendar.Response) *MonthCalendarResponse {
	grid := resp.Grid

	cells := make([]*DayCell, len(grid.Cells))
	for i, day := range grid.Cells {
		if day == nil {
			continue
		}
		cells[i] = fromDayBucket(day)
	}

	return &MonthCalendarResponse{
		Year:          grid.Year,
		Month:         grid.Month,
		Venue:         resp.Venue,
		Department:    resp.Department,
		LeadingBlanks: grid.LeadingBlanks,
		Cells:         cells,
	}
}

func fromDayBucket(day *domain.DayBucket) *DayCell {
	return &DayCell{
		Date:            day.Date,
		BookingCount:    day.BookingCount,
		OccupiedMinutes: day.OccupiedMinutes,
		PercentFull:     day.PercentFull,
		OverlapMinutes:  day.OverlapMinutes,
		HasConflict:     day.HasConflict,
		Free:            day.IsFree(),
		IsFull:          day.IsFull(),
		Bookings:        models.FromDomainBookingList(day.Bookings),
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Без year и month берётся текущий месяц.
func ToUseCaseRequest(yearRaw, monthRaw, venue, department string, now time.Time) (*getMonthCalendar.Request, error) {
	year, month := now.Year(), int(now.Month())

	if yearRaw != "" || monthRaw != "" {
		var err error
		year, month, err = calendar.ParseMonthParams(yearRaw, monthRaw)
		if err != nil {
			return nil, err
		}
	}

	return &getMonthCalendar.Request{
		Year:       year,
		Month:      month,
		Venue:      venue,
		Department: department,
	}, nil
}
