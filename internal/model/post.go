package model

import (
	"sort"
	"time"
)

type Post struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	Location  string    `json:"location,omitempty"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
	Comments  []Comment `json:"comments,omitempty"`
}

// SortComments orders the comment thread by creation time ascending.
// The upstream API does not guarantee any order.
func (p *Post) SortComments() {
	sort.SliceStable(p.Comments, func(i, j int) bool {
		return p.Comments[i].CreatedAt.Before(p.Comments[j].CreatedAt)
	})
}
