package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/369Dsharma/Notes-backend/internal/domain/entity"
	"github.com/369Dsharma/Notes-backend/internal/domain/repository"
)

type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

func (r *AuditRepository) Insert(e *entity.AuditEntry) error {
	ctx := context.Background()
	md, err := json.Marshal(e.Metadata)
	if err != nil {
		md = []byte("{}")
	}
	var userID any
	if e.UserID != "" {
		userID = e.UserID
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO audit_logs (user_id, email, action, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, userID, e.Email, e.Action, md)
	return row.Scan(&e.ID, &e.CreatedAt)
}

var _ repository.AuditRepository = (*AuditRepository)(nil)
