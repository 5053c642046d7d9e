package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

type KeywordRepo struct {
	db *sql.DB
}

func NewKeywordRepo(db *sql.DB) *KeywordRepo {
	return &KeywordRepo{db: db}
}

func (r *KeywordRepo) List(ctx context.Context) ([]model.Keyword, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, keyword, created_by, created_at
		FROM blocked_keywords ORDER BY keyword`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []model.Keyword
	for rows.Next() {
		var k model.Keyword
		var createdBy sql.NullString
		if err := rows.Scan(&k.ID, &k.Keyword, &createdBy, &k.CreatedAt); err != nil {
			return nil, err
		}
		if createdBy.Valid {
			k.CreatedBy = &createdBy.String
		}
		keywords = append(keywords, k)
	}
	return keywords, rows.Err()
}

// Add inserts a keyword, ignoring duplicates.
func (r *KeywordRepo) Add(ctx context.Context, keyword, createdBy string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blocked_keywords (id, keyword, created_by, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (keyword) DO NOTHING`,
		uuid.NewString(), keyword, createdBy, time.Now().UTC())
	return err
}

func (r *KeywordRepo) Remove(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blocked_keywords WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
