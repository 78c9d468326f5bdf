package service

import (
	"context"

	"github.com/hienthq-zcv/admin-service/internal/model"
	"github.com/hienthq-zcv/admin-service/internal/repository"
	"go.uber.org/zap"
)

type auditService struct {
	logger *zap.Logger
	repo *repository.Repository
}

func newAuditService(logger *zap.Logger, repo *repository.Repository) Audit {
	return &auditService{
		logger: logger,
		repo: repo,
	}
}

func (s *auditService) Find(ctx context.Context, limit int, offset int) ([]*model.AuditRecord, error) {
	records, err := s.repo.Postgres.Audit.Find(ctx, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find audit records: %s", err.Error())
		return nil, ErrInternal
	}

	return records, nil
}
