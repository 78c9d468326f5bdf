package postgres

import (
	"context"

	"github.com/hienthq-zcv/admin-service/internal/config"
	"github.com/hienthq-zcv/admin-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

type Audit interface {
	Create(ctx context.Context, record model.AuditRecord) error
	Find(ctx context.Context, limit int, offset int) ([]*model.AuditRecord, error)
}

type PostgresRepository struct {
	Audit
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Audit: newAuditRepo(db),
	}
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, cfg.ConnString())
}
