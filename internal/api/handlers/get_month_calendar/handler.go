package get_month_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
	getMonthCalendar "github.com/m04kA/SMC-VenueCalendar/internal/usecase/get_month_calendar"
)

const (
	msgInvalidMonth = "некорректные параметры календаря: ожидается year 1-9999 и month 1-12"
)

type Handler struct {
	useCase GetMonthCalendarUseCase
	logger  Logger
	now     func() time.Time
}

func NewHandler(useCase GetMonthCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/calendar
// Query params: year, month (оба или ни одного), venue, department (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(q.Get("year"), q.Get("month"), q.Get("venue"), q.Get("department"), h.now())
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getMonthCalendar.ErrInvalidParameters):
			h.logger.Warn("GET /calendar - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: year=%d, month=%d, venue=%q, error=%v",
				useCaseReq.Year, useCaseReq.Month, useCaseReq.Venue, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built: year=%d, month=%d, venue=%q",
		useCaseReq.Year, useCaseReq.Month, useCaseReq.Venue)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
