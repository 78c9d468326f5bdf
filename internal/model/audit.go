package model

import (
	"time"

	"github.com/google/uuid"
)

type AuditRecord struct {
	ID        uuid.UUID `json:"id"`
	PostID    string    `json:"post_id"`
	Admin     string    `json:"admin"`
	DeletedAt time.Time `json:"deleted_at"`
}
