package set_theme

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-VenueCalendar/internal/service/session"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidTheme = "неизвестная тема, ожидается light или dtao"
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

// Handle PUT /api/v1/session/theme
// Body: {"theme": "light" | "dtao"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /session/theme - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	event, err := h.hub.SetTheme(session.Theme(req.Theme))
	if err != nil {
		if errors.Is(err, session.ErrInvalidTheme) {
			h.logger.Warn("PUT /session/theme - Invalid theme: %q", req.Theme)
			handlers.RespondBadRequest(w, msgInvalidTheme)
			return
		}
		h.logger.Error("PUT /session/theme - Failed to set theme: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /session/theme - Theme set: theme=%s, version=%d", event.Theme, event.Version)
	handlers.RespondJSON(w, http.StatusOK, event)
}
