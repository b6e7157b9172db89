package logout

// LogoutRequest HTTP request model
type LogoutRequest struct {
	Reason string `json:"reason"` // Роль или причина выхода, опционально
}
