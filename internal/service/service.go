package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/hienthq-zcv/admin-service/internal/dto"
	"github.com/hienthq-zcv/admin-service/internal/model"
	"github.com/hienthq-zcv/admin-service/internal/platform"
	"github.com/hienthq-zcv/admin-service/internal/repository"
	"go.uber.org/zap"
)

type Community interface {
	Refresh(ctx context.Context)
	Posts() []model.Post
	Summary() dto.CommunitySummary
	Query() string
	SetQuery(q string)
	IsLoading() bool
	RequestDelete(postID string, admin string) uuid.UUID
	PendingDelete() (string, bool)
	ConfirmDelete(ctx context.Context, token uuid.UUID) bool
	CancelDelete()
}

type Statistics interface {
	Load(ctx context.Context)
	Snapshot() model.Statistics
	BarData() []model.BarPoint
	PieData() []model.PiePoint
	Theme() string
	IsLoading() bool
}

type Menu interface {
	Resolve(path string) ([]dto.MenuEntry, []dto.MenuEntry)
}

type Audit interface {
	Find(ctx context.Context, limit int, offset int) ([]*model.AuditRecord, error)
}

type Service struct {
	Community
	Statistics
	Menu
	Audit
	Notifications *Feed
}

func New(logger *zap.Logger, repo *repository.Repository, api platform.API) *Service {
	feed := NewFeed(logger)

	return &Service{
		Community: newCommunityService(logger, api, repo, feed),
		Statistics: newStatisticsService(logger, api, feed, nil),
		Menu: newMenuService(),
		Audit: newAuditService(logger, repo),
		Notifications: feed,
	}
}
