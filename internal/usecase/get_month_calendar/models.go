package get_month_calendar

import "github.com/m04kA/SMC-VenueCalendar/internal/domain"

// Request модель запроса месячного календаря
type Request struct {
	Year       int    `validate:"min=1,max=9999"`
	Month      int    `validate:"min=1,max=12"`
	Venue      string `validate:"max=200"` // Название или ID площадки, пусто значит все
	Department string `validate:"max=200"` // Фильтр по подразделению, опционально
}

// Response модель ответа
type Response struct {
	Venue      string
	Department string
	Grid       *domain.MonthGrid
	Excluded   int // Бронирования источника вне месяца или фильтров
}
