package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

type ModerationRepo struct {
	db *sql.DB
}

func NewModerationRepo(db *sql.DB) *ModerationRepo {
	return &ModerationRepo{db: db}
}

// Log appends an entry to the moderation audit log.
func (r *ModerationRepo) Log(ctx context.Context, e *model.ModerationEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO moderation_log (id, action, target_type, target_id, admin_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Action, e.TargetType, e.TargetID, e.AdminID, nullIfEmpty(e.Notes), e.CreatedAt)
	return err
}
