package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
)

type Handler struct {
	hub    SessionHub
	logger Logger
}

func NewHandler(hub SessionHub, logger Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// Handle GET /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot := h.hub.Snapshot()

	h.logger.Info("GET /session - Snapshot: theme=%s, loggedOut=%t, version=%d", snapshot.Theme, snapshot.LoggedOut, snapshot.Version)
	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
