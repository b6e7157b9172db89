package handlers

import (
	"encoding/json"
	"net/http"
)

const (
	ReasonInvalidParameters = "invalid_parameters"
	ReasonNotFound          = "not_found"
	ReasonInternal          = "internal_error"

	msgInternalError = "внутренняя ошибка сервера"
)

// ErrorResponse модель ошибки API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// RespondJSON пишет ответ в JSON
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку с кодом причины
func RespondError(w http.ResponseWriter, status int, reason, message string) {
	RespondJSON(w, status, ErrorResponse{
		Code:    status,
		Reason:  reason,
		Message: message,
	})
}

// RespondBadRequest 400 с причиной invalid_parameters
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, ReasonInvalidParameters, message)
}

// RespondNotFound 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, ReasonNotFound, message)
}

// RespondInternalError 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, ReasonInternal, msgInternalError)
}
