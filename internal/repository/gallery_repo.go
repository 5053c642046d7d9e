package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

type GalleryRepo struct {
	db *sql.DB
}

func NewGalleryRepo(db *sql.DB) *GalleryRepo {
	return &GalleryRepo{db: db}
}

// InsertPost publishes a paper as a gallery post.
func (r *GalleryRepo) InsertPost(ctx context.Context, post *model.GalleryPost) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gallery_posts (post_id, paper_id, user_id, vote_count, is_hidden, is_deleted, created_at)
		VALUES ($1, $2, $3, 0, FALSE, FALSE, $4)`,
		post.PostID, post.PaperID, post.UserID, post.CreatedAt)
	return err
}

// GetPost returns a post regardless of hidden state; deleted posts are not
// returned.
func (r *GalleryRepo) GetPost(ctx context.Context, postID string) (*model.GalleryPost, error) {
	return scanPost(r.db.QueryRowContext(ctx, `
		SELECT post_id, paper_id, user_id, vote_count, is_hidden, is_deleted, created_at, deleted_at
		FROM gallery_posts WHERE post_id = $1 AND is_deleted = FALSE`, postID))
}

// GetActiveByPaperID returns the live post for a paper, if any.
func (r *GalleryRepo) GetActiveByPaperID(ctx context.Context, paperID string) (*model.GalleryPost, error) {
	return scanPost(r.db.QueryRowContext(ctx, `
		SELECT post_id, paper_id, user_id, vote_count, is_hidden, is_deleted, created_at, deleted_at
		FROM gallery_posts WHERE paper_id = $1 AND is_deleted = FALSE`, paperID))
}

// ListVisible returns up to limit visible posts joined with their paper
// fields, newest first. Voice/template filters use "all" to mean no filter.
// Trending order is applied by the service layer on top of this.
func (r *GalleryRepo) ListVisible(ctx context.Context, voiceFilter, templateFilter string, limit int) ([]model.GalleryEntry, error) {
	query := `
		SELECT gp.post_id, gp.paper_id, p.title, p.claim, p.template, p.voice,
		       p.abstract, p.chart_count, gp.vote_count, gp.created_at
		FROM gallery_posts gp
		JOIN papers p ON gp.paper_id = p.paper_id
		WHERE gp.is_hidden = FALSE AND gp.is_deleted = FALSE`
	args := []any{}

	if voiceFilter != "" && voiceFilter != "all" {
		args = append(args, voiceFilter)
		query += ` AND p.voice = $` + itoa(len(args))
	}
	if templateFilter != "" && templateFilter != "all" {
		args = append(args, templateFilter)
		query += ` AND p.template = $` + itoa(len(args))
	}

	args = append(args, limit)
	query += ` ORDER BY gp.created_at DESC LIMIT $` + itoa(len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.GalleryEntry
	for rows.Next() {
		var e model.GalleryEntry
		if err := rows.Scan(&e.PostID, &e.PaperID, &e.Title, &e.Claim, &e.Template,
			&e.Voice, &e.Abstract, &e.ChartCount, &e.VoteCount, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListVisibleForSitemap returns post IDs and creation times of visible posts
// for the sitemap, newest first.
func (r *GalleryRepo) ListVisibleForSitemap(ctx context.Context, limit int) ([]model.GalleryPost, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT post_id, paper_id, created_at
		FROM gallery_posts
		WHERE is_hidden = FALSE AND is_deleted = FALSE
		ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.GalleryPost
	for rows.Next() {
		var p model.GalleryPost
		if err := rows.Scan(&p.PostID, &p.PaperID, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// ApplyVote records a vote inside one transaction and returns the post's new
// count and the caller's resulting vote state. Casting the same value twice
// removes the vote; a different value replaces it.
func (r *GalleryRepo) ApplyVote(ctx context.Context, postID, userID string, value int) (newCount, userVote int, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRowContext(ctx, `
		SELECT vote_value FROM votes WHERE post_id = $1 AND user_id = $2`,
		postID, userID).Scan(&existing)
	hasVote := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, 0, err
	}

	var change int
	switch {
	case !hasVote:
		_, err = tx.ExecContext(ctx, `
			INSERT INTO votes (post_id, user_id, vote_value, created_at)
			VALUES ($1, $2, $3, $4)`,
			postID, userID, value, time.Now().UTC())
		change, userVote = value, value
	case existing == value:
		_, err = tx.ExecContext(ctx, `
			DELETE FROM votes WHERE post_id = $1 AND user_id = $2`, postID, userID)
		change, userVote = -value, 0
	default:
		_, err = tx.ExecContext(ctx, `
			UPDATE votes SET vote_value = $1 WHERE post_id = $2 AND user_id = $3`,
			value, postID, userID)
		change, userVote = 2*value, value
	}
	if err != nil {
		return 0, 0, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE gallery_posts SET vote_count = vote_count + $1 WHERE post_id = $2`,
		change, postID)
	if err != nil {
		return 0, 0, err
	}

	err = tx.QueryRowContext(ctx, `
		SELECT vote_count FROM gallery_posts WHERE post_id = $1`, postID).Scan(&newCount)
	if err != nil {
		return 0, 0, err
	}

	return newCount, userVote, tx.Commit()
}

// GetUserVote returns the caller's vote on a post, 0 when absent.
func (r *GalleryRepo) GetUserVote(ctx context.Context, postID, userID string) (int, error) {
	var v int
	err := r.db.QueryRowContext(ctx, `
		SELECT vote_value FROM votes WHERE post_id = $1 AND user_id = $2`,
		postID, userID).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return v, err
}

// GetUserVotes returns all of a user's votes keyed by post ID, for the
// gallery listing.
func (r *GalleryRepo) GetUserVotes(ctx context.Context, userID string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT post_id, vote_value FROM votes WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votes := make(map[string]int)
	for rows.Next() {
		var postID string
		var v int
		if err := rows.Scan(&postID, &v); err != nil {
			return nil, err
		}
		votes[postID] = v
	}
	return votes, rows.Err()
}

// SetHidden toggles a post's hidden flag.
func (r *GalleryRepo) SetHidden(ctx context.Context, postID string, hidden bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gallery_posts SET is_hidden = $1 WHERE post_id = $2`, hidden, postID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SoftDelete removes a post from the gallery while keeping the row for the
// audit trail.
func (r *GalleryRepo) SoftDelete(ctx context.Context, postID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gallery_posts SET is_deleted = TRUE, deleted_at = $1 WHERE post_id = $2`,
		time.Now().UTC(), postID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListHidden returns hidden, not deleted posts with paper context for the
// admin dashboard.
func (r *GalleryRepo) ListHidden(ctx context.Context) ([]model.HiddenPost, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT gp.post_id, gp.paper_id, p.title, p.claim, gp.vote_count, gp.created_at
		FROM gallery_posts gp
		JOIN papers p ON gp.paper_id = p.paper_id
		WHERE gp.is_hidden = TRUE AND gp.is_deleted = FALSE
		ORDER BY gp.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.HiddenPost
	for rows.Next() {
		var h model.HiddenPost
		if err := rows.Scan(&h.PostID, &h.PaperID, &h.Title, &h.Claim, &h.VoteCount, &h.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, h)
	}
	return posts, rows.Err()
}

func scanPost(row *sql.Row) (*model.GalleryPost, error) {
	var p model.GalleryPost
	var deletedAt sql.NullTime
	err := row.Scan(&p.PostID, &p.PaperID, &p.UserID, &p.VoteCount,
		&p.IsHidden, &p.IsDeleted, &p.CreatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		p.DeletedAt = &deletedAt.Time
	}
	return &p, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
