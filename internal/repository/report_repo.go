package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

type ReportRepo struct {
	db *sql.DB
}

func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// Insert records a report. userID is nil for anonymous reporters.
func (r *ReportRepo) Insert(ctx context.Context, postID string, userID *string, reason, notes string) (*model.Report, error) {
	rep := &model.Report{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    userID,
		Reason:    reason,
		Notes:     notes,
		Status:    model.ReportPending,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reports (id, post_id, user_id, reason, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rep.ID, rep.PostID, rep.UserID, rep.Reason, nullIfEmpty(rep.Notes), rep.Status, rep.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// CountDistinctReporters counts distinct signed-in reporters with pending
// reports on a post since the cutoff. Anonymous reports carry a NULL user_id,
// which COUNT(DISTINCT) skips, so they never move the thresholds.
func (r *ReportRepo) CountDistinctReporters(ctx context.Context, postID string, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT user_id) FROM reports
		WHERE post_id = $1 AND created_at > $2 AND status = $3`,
		postID, since, model.ReportPending).Scan(&n)
	return n, err
}

// ListPending returns pending reports joined with post/paper context,
// newest first.
func (r *ReportRepo) ListPending(ctx context.Context) ([]model.PendingReport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.post_id, r.reason, r.notes, r.status, r.created_at,
		       gp.paper_id, p.title, p.claim, u.username
		FROM reports r
		JOIN gallery_posts gp ON r.post_id = gp.post_id
		JOIN papers p ON gp.paper_id = p.paper_id
		LEFT JOIN users u ON r.user_id = u.id
		WHERE r.status = $1
		ORDER BY r.created_at DESC`, model.ReportPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.PendingReport
	for rows.Next() {
		var pr model.PendingReport
		var notes, reporter sql.NullString
		if err := rows.Scan(&pr.ID, &pr.PostID, &pr.Reason, &notes, &pr.Status,
			&pr.CreatedAt, &pr.PaperID, &pr.Title, &pr.Claim, &reporter); err != nil {
			return nil, err
		}
		pr.Notes = notes.String
		pr.ReporterName = reporter.String
		reports = append(reports, pr)
	}
	return reports, rows.Err()
}

// ResolveByPost moves all of a post's reports to the given status and stamps
// the reviewing admin.
func (r *ReportRepo) ResolveByPost(ctx context.Context, postID, status, adminID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE reports SET status = $1, reviewed_at = $2, reviewed_by = $3
		WHERE post_id = $4 AND status = $5`,
		status, time.Now().UTC(), adminID, postID, model.ReportPending)
	return err
}
