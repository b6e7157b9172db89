package export_calendar

import (
	"strconv"
	"strings"

	"github.com/m04kA/SMC-VenueCalendar/internal/service/calendar"
	exportCalendar "github.com/m04kA/SMC-VenueCalendar/internal/usecase/export_calendar"
)

// ExportResponse HTTP response model
type ExportResponse struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	VenueID       string        `json:"venueId,omitempty"`
	Venue         string        `json:"venue"`
	LeadingBlanks int           `json:"leadingBlanks"`
	Cells         []*ExportCell `json:"cells"` // null для ведущих пустых ячеек
	Overflow      []ExportEntry `json:"overflow"`
}

// ExportCell ячейка печатного календаря
type ExportCell struct {
	Date        string        `json:"date"`
	PercentFull int           `json:"percentFull"`
	Entries     []ExportEntry `json:"entries"`
	Hidden      int           `json:"hidden"`
}

// ExportEntry бронирование в печатном календаре
type ExportEntry struct {
	Key         string `json:"key"`
	Date        string `json:"date"`
	TimeRange   string `json:"timeRange"`
	Duration    string `json:"duration,omitempty"`
	Title       string `json:"title"`
	Venue       string `json:"venue,omitempty"`
	Coordinator string `json:"coordinator,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Department  string `json:"department"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *exportCalendar.Response) *ExportResponse {
	export := resp.Export

	cells := make([]*ExportCell, len(export.Cells))
	for i, day := range export.Cells {
		if day == nil {
			continue
		}
		cells[i] = &ExportCell{
			Date:        day.Date,
			PercentFull: day.PercentFull,
			Entries:     fromEntries(day.Entries),
			Hidden:      day.Hidden,
		}
	}

	return &ExportResponse{
		Year:          export.Year,
		Month:         export.Month,
		VenueID:       resp.Venue.ID,
		Venue:         export.Venue,
		LeadingBlanks: export.LeadingBlanks,
		Cells:         cells,
		Overflow:      fromEntries(export.Overflow),
	}
}

func fromEntries(entries []calendar.ExportEntry) []ExportEntry {
	out := make([]ExportEntry, len(entries))
	for i, e := range entries {
		out[i] = ExportEntry{
			Key:         e.Key,
			Date:        e.Date,
			TimeRange:   e.TimeRange,
			Duration:    e.DurationLabel,
			Title:       e.Title,
			Venue:       e.Venue,
			Coordinator: e.Coordinator,
			Phone:       e.Phone,
			Department:  e.DepartmentLabel,
		}
	}
	return out
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(yearRaw, monthRaw, venue, perCellRaw string) (*exportCalendar.Request, error) {
	year, month, err := calendar.ParseMonthParams(yearRaw, monthRaw)
	if err != nil {
		return nil, err
	}

	perCell := 0
	if perCellRaw = strings.TrimSpace(perCellRaw); perCellRaw != "" {
		perCell, err = strconv.Atoi(perCellRaw)
		if err != nil {
			return nil, err
		}
	}

	return &exportCalendar.Request{
		Year:    year,
		Month:   month,
		Venue:   venue,
		PerCell: perCell,
	}, nil
}
