package get_day_bookings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/domain"
	"github.com/m04kA/SMC-VenueCalendar/pkg/validate"
)

// validateRequest валидирует входные данные и возвращает разобранную дату
func validateRequest(req *Request) (time.Time, error) {
	req.Date = strings.TrimSpace(req.Date)
	req.Venue = strings.TrimSpace(req.Venue)

	if err := validate.Struct(req); err != nil {
		var fields validate.FieldErrors
		if errors.As(err, &fields) {
			if _, bad := fields["Date"]; bad {
				return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
			}
		}
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	return date, nil
}
