package dto

type ConfirmDeleteRequest struct {
	ConfirmToken string `json:"confirm_token" binding:"required"`
}
