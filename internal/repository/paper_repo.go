package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

type PaperRepo struct {
	db *sql.DB
}

func NewPaperRepo(db *sql.DB) *PaperRepo {
	return &PaperRepo{db: db}
}

// Insert persists a generated paper. List-valued fields are stored as JSON
// text columns, matching both backends.
func (r *PaperRepo) Insert(ctx context.Context, p *model.Paper) error {
	authors, err := json.Marshal(p.Authors)
	if err != nil {
		return fmt.Errorf("marshal authors: %w", err)
	}
	affiliations, err := json.Marshal(p.Affiliations)
	if err != nil {
		return fmt.Errorf("marshal affiliations: %w", err)
	}
	references, err := json.Marshal(p.References)
	if err != nil {
		return fmt.Errorf("marshal references: %w", err)
	}
	charts, err := json.Marshal(p.Charts)
	if err != nil {
		return fmt.Errorf("marshal charts: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO papers (
			paper_id, fingerprint, claim, template, length, voice, tone,
			chart_count, lock_seed, title, authors_json, affiliations_json,
			abstract, introduction, methods, results, discussion, limitations,
			references_json, charts_json, user_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		p.PaperID, p.Fingerprint, p.Claim, p.Template, p.Length, p.Voice, p.Tone,
		p.ChartCount, p.LockSeed, p.Title, string(authors), string(affiliations),
		p.Abstract, nullIfEmpty(p.Introduction), nullIfEmpty(p.Methods),
		nullIfEmpty(p.Results), nullIfEmpty(p.Discussion), p.Limitations,
		string(references), string(charts), p.UserID, p.CreatedAt)
	return err
}

func (r *PaperRepo) GetByID(ctx context.Context, paperID string) (*model.Paper, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, paperSelect+` WHERE paper_id = $1`, paperID))
}

// GetByFingerprint returns the existing paper for a generation request, or
// sql.ErrNoRows when the request is novel.
func (r *PaperRepo) GetByFingerprint(ctx context.Context, fingerprint string) (*model.Paper, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, paperSelect+` WHERE fingerprint = $1`, fingerprint))
}

const paperSelect = `
	SELECT paper_id, fingerprint, claim, template, length, voice, tone,
	       chart_count, lock_seed, title, authors_json, affiliations_json,
	       abstract, introduction, methods, results, discussion, limitations,
	       references_json, charts_json, user_id, created_at
	FROM papers`

func (r *PaperRepo) scanOne(row *sql.Row) (*model.Paper, error) {
	var (
		p                                       model.Paper
		authors, affiliations, refs, charts     string
		introduction, methods, results, discuss sql.NullString
		userID                                  sql.NullString
	)
	err := row.Scan(&p.PaperID, &p.Fingerprint, &p.Claim, &p.Template, &p.Length,
		&p.Voice, &p.Tone, &p.ChartCount, &p.LockSeed, &p.Title,
		&authors, &affiliations, &p.Abstract, &introduction, &methods,
		&results, &discuss, &p.Limitations, &refs, &charts, &userID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(authors), &p.Authors); err != nil {
		return nil, fmt.Errorf("unmarshal authors: %w", err)
	}
	if err := json.Unmarshal([]byte(affiliations), &p.Affiliations); err != nil {
		return nil, fmt.Errorf("unmarshal affiliations: %w", err)
	}
	if err := json.Unmarshal([]byte(refs), &p.References); err != nil {
		return nil, fmt.Errorf("unmarshal references: %w", err)
	}
	if err := json.Unmarshal([]byte(charts), &p.Charts); err != nil {
		return nil, fmt.Errorf("unmarshal charts: %w", err)
	}

	p.Introduction = introduction.String
	p.Methods = methods.String
	p.Results = results.String
	p.Discussion = discuss.String
	if userID.Valid {
		p.UserID = &userID.String
	}
	return &p, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
