package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/repository"
	"github.com/johnsonDevMent/trustmebro/pkg/ident"
)

// ShareTTL is how long a share link stays valid.
const ShareTTL = 48 * time.Hour

type ShareService struct {
	shares *repository.ShareRepo
	papers *repository.PaperRepo
}

func NewShareService(shares *repository.ShareRepo, papers *repository.PaperRepo) *ShareService {
	return &ShareService{shares: shares, papers: papers}
}

// Create issues a share token for a paper.
func (s *ShareService) Create(ctx context.Context, paperID string) (*model.ShareResponse, error) {
	if _, err := s.papers.GetByID(ctx, paperID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	token, err := ident.NewToken(32)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	st := &model.ShareToken{
		Token:     token,
		PaperID:   paperID,
		ExpiresAt: now.Add(ShareTTL),
		CreatedAt: now,
	}
	if err := s.shares.Insert(ctx, st); err != nil {
		return nil, err
	}

	return &model.ShareResponse{
		Success:   true,
		ShareURL:  fmt.Sprintf("/share/%s", token),
		ExpiresAt: st.ExpiresAt.Format(time.RFC3339),
		Token:     token,
	}, nil
}

// Resolve looks up a share token and returns the paper it grants access to.
// Expired tokens resolve to ErrExpired even before the janitor purges them.
func (s *ShareService) Resolve(ctx context.Context, token string) (*model.SharedPaperResponse, error) {
	st, err := s.shares.Get(ctx, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if time.Now().UTC().After(st.ExpiresAt) {
		return nil, ErrExpired
	}

	paper, err := s.papers.GetByID(ctx, st.PaperID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &model.SharedPaperResponse{
		Paper:     paper,
		ExpiresAt: st.ExpiresAt.Format(time.RFC3339),
	}, nil
}
