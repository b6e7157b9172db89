package list_venues

import (
	"net/http"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListVenues(r.Context())
	if err != nil {
		h.logger.Error("GET /venues - Failed to list venues: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues - Venues retrieved: count=%d", len(resp.Venues))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
