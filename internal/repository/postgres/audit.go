package postgres

import (
	"context"
	"time"

	"github.com/hienthq-zcv/admin-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type auditRepo struct {
	db *pgxpool.Pool
}

func newAuditRepo(db *pgxpool.Pool) Audit {
	return &auditRepo{
		db: db,
	}
}

func (r *auditRepo) Create(ctx context.Context, record model.AuditRecord) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO moderation_audit(id, post_id, admin, deleted_at) VALUES($1, $2, $3, $4)",
		record.ID,
		record.PostID,
		record.Admin,
		record.DeletedAt,
	)
	return err
}

func (r *auditRepo) Find(ctx context.Context, limit int, offset int) ([]*model.AuditRecord, error) {
	maxLimit(&limit)

	rows, err := r.db.Query(
		ctx,
		`SELECT a.id, a.post_id, a.admin, a.deleted_at
		FROM moderation_audit a
		ORDER BY a.deleted_at DESC
		LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*model.AuditRecord
	for rows.Next() {
		var (
			record model.AuditRecord
			deletedAt time.Time
		)
		if err := rows.Scan(
			&record.ID,
			&record.PostID,
			&record.Admin,
			&deletedAt,
		); err != nil {
			return nil, err
		}

		record.DeletedAt = deletedAt
		records = append(records, &record)
	}

	return records, rows.Err()
}
