package get_day_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
	getDayBookings "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_day_bookings"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetDayBookingsUseCase
	logger  Logger
}

func NewHandler(useCase GetDayBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/days/{date}
// Query params: venue (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	venue := r.URL.Query().Get("venue")

	result, err := h.useCase.Execute(r.Context(), &getDayBookings.Request{Date: date, Venue: venue})
	if err != nil {
		switch {
		case errors.Is(err, getDayBookings.ErrInvalidDate):
			h.logger.Warn("GET /calendar/days/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDayBookings.ErrInvalidInput):
			h.logger.Warn("GET /calendar/days/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar/days/{date} - Failed to get bookings: date=%s, venue=%q, error=%v", date, venue, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/days/{date} - Bookings retrieved: date=%s, venue=%q, count=%d", date, venue, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
