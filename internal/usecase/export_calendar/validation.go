package export_calendar

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/pkg/validate"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.Venue = strings.TrimSpace(req.Venue)

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return nil
}

// resolveVenue ищет площадку по названию или ID
func resolveVenue(venues []domain.Venue, key string) (domain.Venue, bool) {
	for _, v := range venues {
		if v.Name == key || (v.ID != "" && v.ID == key) {
			return v, true
		}
	}
	return domain.Venue{}, false
}
