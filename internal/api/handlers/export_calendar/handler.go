package export_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
	exportCalendar "github.com/m04kA/SMC-VenueCalendar/internal/usecase/export_calendar"
)

const (
	msgInvalidParameters = "некорректные параметры: ожидается year, month, venue и perCell 0-10"
	msgVenueNotFound     = "площадка не найдена"
)

type Handler struct {
	useCase ExportCalendarUseCase
	logger  Logger
}

func NewHandler(useCase ExportCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/export
// Query params: year, month, venue (обязательны), perCell (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(q.Get("year"), q.Get("month"), q.Get("venue"), q.Get("perCell"))
	if err != nil {
		h.logger.Warn("GET /calendar/export - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParameters)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, exportCalendar.ErrInvalidParameters):
			h.logger.Warn("GET /calendar/export - Invalid parameters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParameters)

		case errors.Is(err, exportCalendar.ErrVenueNotFound):
			h.logger.Warn("GET /calendar/export - Venue not found: venue=%q", useCaseReq.Venue)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /calendar/export - Failed to build export: year=%d, month=%d, venue=%q, error=%v",
				useCaseReq.Year, useCaseReq.Month, useCaseReq.Venue, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/export - Export built: year=%d, month=%d, venue=%q, overflow=%d",
		useCaseReq.Year, useCaseReq.Month, result.Export.Venue, len(result.Export.Overflow))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
