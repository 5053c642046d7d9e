package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

type ShareRepo struct {
	db *sql.DB
}

func NewShareRepo(db *sql.DB) *ShareRepo {
	return &ShareRepo{db: db}
}

func (r *ShareRepo) Insert(ctx context.Context, s *model.ShareToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO share_tokens (token, paper_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)`,
		s.Token, s.PaperID, s.ExpiresAt, s.CreatedAt)
	return err
}

func (r *ShareRepo) Get(ctx context.Context, token string) (*model.ShareToken, error) {
	var s model.ShareToken
	err := r.db.QueryRowContext(ctx, `
		SELECT token, paper_id, expires_at, created_at
		FROM share_tokens WHERE token = $1`, token).
		Scan(&s.Token, &s.PaperID, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteExpired purges tokens whose expiry is before the cutoff and returns
// how many were removed. Called by the janitor worker.
func (r *ShareRepo) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM share_tokens WHERE expires_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
