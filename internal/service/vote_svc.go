package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/repository"
)

type VoteService struct {
	gallery *repository.GalleryRepo
	cache   *CacheService
}

func NewVoteService(gallery *repository.GalleryRepo, cache *CacheService) *VoteService {
	return &VoteService{gallery: gallery, cache: cache}
}

// Submit applies a vote to a post. Repeating the current vote removes it,
// a different value replaces it.
func (s *VoteService) Submit(ctx context.Context, postID, userID string, value int) (*model.VoteResponse, error) {
	if value != -1 && value != 1 {
		return nil, fmt.Errorf("invalid vote value: %d", value)
	}

	if _, err := s.gallery.GetPost(ctx, postID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	newCount, userVote, err := s.gallery.ApplyVote(ctx, postID, userID, value)
	if err != nil {
		return nil, err
	}

	if err := s.cache.InvalidatePost(ctx, postID); err != nil {
		log.Printf("cache: invalidate post error: %v", err)
	}
	if err := s.cache.InvalidateGallery(ctx); err != nil {
		log.Printf("cache: invalidate gallery error: %v", err)
	}

	return &model.VoteResponse{Success: true, NewCount: newCount, UserVote: userVote}, nil
}
