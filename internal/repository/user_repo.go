package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/johnsonDevMent/trustmebro/internal/model"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new account and returns it. The caller hashes the password.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	u := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, is_admin, is_banned, created_at)
		VALUES ($1, $2, $3, FALSE, FALSE, $4)`,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, is_admin, is_banned, created_at
		FROM users WHERE username = $1`, username))
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, is_admin, is_banned, created_at
		FROM users WHERE id = $1`, id))
}

// Ban marks the account banned. Existing sessions are checked against this
// flag on privileged actions.
func (r *UserRepo) Ban(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET is_banned = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// PromoteAdmin grants admin to the named user.
func (r *UserRepo) PromoteAdmin(ctx context.Context, username string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET is_admin = TRUE WHERE username = $1`, username)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AdminExists reports whether any admin account exists. Used to gate the
// one-shot setup endpoint.
func (r *UserRepo) AdminExists(ctx context.Context) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE is_admin = TRUE`).Scan(&n)
	return n > 0, err
}

func (r *UserRepo) scanOne(row *sql.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.IsBanned, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// requireRow converts a zero-row update into sql.ErrNoRows so handlers can
// map it to 404.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
