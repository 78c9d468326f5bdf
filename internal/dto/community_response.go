package dto

import "github.com/hienthq-zcv/admin-service/internal/model"

type CommunityPost struct {
	Post        model.Post `json:"post"`
	CreatedText string     `json:"created_text"`
}

type CommunitySummary struct {
	TotalPosts    int   `json:"total_posts"`
	TotalComments int   `json:"total_comments"`
	TotalLikes    int64 `json:"total_likes"`
}

type GetCommunityResponse struct {
	Posts     []CommunityPost  `json:"posts"`
	Summary   CommunitySummary `json:"summary"`
	Query     string           `json:"query"`
	IsLoading bool             `json:"is_loading"`
}

type RequestDeleteResponse struct {
	PostID       string `json:"post_id"`
	ConfirmToken string `json:"confirm_token"`
}
