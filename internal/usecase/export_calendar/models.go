package export_calendar

import (
	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/calendar"
)

// Request модель запроса печатного календаря
type Request struct {
	Year    int    `validate:"min=1,max=9999"`
	Month   int    `validate:"min=1,max=12"`
	Venue   string `validate:"required,max=200"` // Название или ID площадки
	PerCell int    `validate:"min=0,max=10"`     // 0 значит значение из конфигурации
}

// Response модель ответа
type Response struct {
	Venue  domain.Venue // Площадка из справочника источника
	Export *calendar.Export
}
