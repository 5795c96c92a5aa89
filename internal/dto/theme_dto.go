package dto

type ThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}
