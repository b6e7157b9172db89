package get_month_calendar

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueCalendar/pkg/validate"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.Venue = strings.TrimSpace(req.Venue)
	req.Department = strings.TrimSpace(req.Department)

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	return nil
}
