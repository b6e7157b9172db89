package set_theme

// SetThemeRequest HTTP request model
type SetThemeRequest struct {
	Theme string `json:"theme"`
}
