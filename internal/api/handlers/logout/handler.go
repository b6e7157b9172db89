package logout

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-VenueCalendar/internal/api/handlers"
)

const msgInvalidBody = "некорректное тело запроса"

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

// Handle POST /api/v1/session/logout
// Body (опционально): {"reason": "admin"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /session/logout - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	event := h.hub.Logout(req.Reason)

	h.logger.Info("POST /session/logout - Logout broadcast: reason=%q, version=%d", req.Reason, event.Version)
	handlers.RespondJSON(w, http.StatusOK, event)
}
