package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/repository"
	"github.com/johnsonDevMent/trustmebro/pkg/ident"
)

const galleryPageSize = 50

type GalleryService struct {
	gallery *repository.GalleryRepo
	papers  *repository.PaperRepo
	users   *repository.UserRepo
	cache   *CacheService
}

func NewGalleryService(gallery *repository.GalleryRepo, papers *repository.PaperRepo, users *repository.UserRepo, cache *CacheService) *GalleryService {
	return &GalleryService{gallery: gallery, papers: papers, users: users, cache: cache}
}

// Publish puts a paper into the public gallery. Republishing an already
// published paper succeeds and returns the existing post's URL.
func (s *GalleryService) Publish(ctx context.Context, paperID, userID string, agreePolicy bool) (*model.PublishResponse, error) {
	if !agreePolicy {
		return nil, ErrPolicyRequired
	}

	if _, err := s.papers.GetByID(ctx, paperID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if existing, err := s.gallery.GetActiveByPaperID(ctx, paperID); err == nil {
		return &model.PublishResponse{Success: true, PostURL: postURL(existing.PostID)}, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	postID, err := ident.NewToken(8)
	if err != nil {
		return nil, err
	}
	post := &model.GalleryPost{
		PostID:    postID,
		PaperID:   paperID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.gallery.InsertPost(ctx, post); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateGallery(ctx); err != nil {
		log.Printf("cache: invalidate gallery error: %v", err)
	}
	return &model.PublishResponse{Success: true, PostURL: postURL(postID)}, nil
}

// List returns up to 50 visible posts for the requested tab and filters,
// with the caller's votes filled in when logged in. Anonymous listings are
// served cache-aside.
func (s *GalleryService) List(ctx context.Context, tab, voice, template string, userID *string) (*model.GalleryResponse, error) {
	if tab != "new" {
		tab = "trending"
	}

	if userID == nil {
		if data, err := s.cache.GetGallery(ctx, tab, voice, template); err != nil {
			log.Printf("cache: gallery read error: %v", err)
		} else if data != nil {
			var cached model.GalleryResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	posts, err := s.gallery.ListVisible(ctx, voice, template, galleryPageSize)
	if err != nil {
		return nil, err
	}

	if tab == "trending" {
		now := time.Now().UTC()
		sort.SliceStable(posts, func(i, j int) bool {
			return TrendingScore(posts[i].VoteCount, now.Sub(posts[i].CreatedAt)) >
				TrendingScore(posts[j].VoteCount, now.Sub(posts[j].CreatedAt))
		})
	}

	if userID != nil {
		votes, err := s.gallery.GetUserVotes(ctx, *userID)
		if err != nil {
			return nil, err
		}
		for i := range posts {
			posts[i].UserVote = votes[posts[i].PostID]
		}
	}

	resp := &model.GalleryResponse{
		Posts:          posts,
		Tab:            tab,
		VoiceFilter:    voice,
		TemplateFilter: template,
	}
	if userID == nil {
		if err := s.cache.SetGallery(ctx, tab, voice, template, resp); err != nil {
			log.Printf("cache: gallery write error: %v", err)
		}
	}
	return resp, nil
}

// GetPost returns a single gallery post with its paper. Hidden posts are
// visible only to their owner and to admins. Anonymous lookups are served
// cache-aside.
func (s *GalleryService) GetPost(ctx context.Context, postID string, userID *string, isAdmin bool) (*model.PostResponse, error) {
	if userID == nil && !isAdmin {
		if data, err := s.cache.GetPost(ctx, postID); err != nil {
			log.Printf("cache: post read error: %v", err)
		} else if data != nil {
			var cached model.PostResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	post, err := s.gallery.GetPost(ctx, postID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if post.IsHidden {
		isOwner := userID != nil && post.UserID == *userID
		if !isOwner && !isAdmin {
			return nil, ErrNotFound
		}
	}

	paper, err := s.papers.GetByID(ctx, post.PaperID)
	if err != nil {
		return nil, err
	}

	resp := &model.PostResponse{Post: post, Paper: paper}
	if author, err := s.users.GetByID(ctx, post.UserID); err == nil {
		resp.AuthorName = author.Username
	}
	if userID != nil {
		vote, err := s.gallery.GetUserVote(ctx, postID, *userID)
		if err != nil {
			return nil, err
		}
		resp.UserVote = vote
	}

	if userID == nil && !isAdmin {
		if err := s.cache.SetPost(ctx, postID, resp); err != nil {
			log.Printf("cache: post write error: %v", err)
		}
	}
	return resp, nil
}

// TrendingScore ranks a post by votes decayed with age. Fresh posts with a
// few votes outrank stale ones with many.
func TrendingScore(votes int, age time.Duration) float64 {
	ageHours := age.Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	return float64(votes+1) / math.Pow(ageHours+2, 1.5)
}

func postURL(postID string) string {
	return fmt.Sprintf("/g/%s", postID)
}
