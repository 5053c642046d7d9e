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

type AdminService struct {
	gallery  *repository.GalleryRepo
	reports  *repository.ReportRepo
	keywords *repository.KeywordRepo
	users    *repository.UserRepo
	audit    *repository.ModerationRepo
	cache    *CacheService
}

func NewAdminService(gallery *repository.GalleryRepo, reports *repository.ReportRepo, keywords *repository.KeywordRepo, users *repository.UserRepo, audit *repository.ModerationRepo, cache *CacheService) *AdminService {
	return &AdminService{gallery: gallery, reports: reports, keywords: keywords, users: users, audit: audit, cache: cache}
}

// Dashboard assembles the moderation overview.
func (s *AdminService) Dashboard(ctx context.Context) (*model.AdminDashboardResponse, error) {
	pending, err := s.reports.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	hidden, err := s.gallery.ListHidden(ctx)
	if err != nil {
		return nil, err
	}
	keywords, err := s.keywords.List(ctx)
	if err != nil {
		return nil, err
	}
	return &model.AdminDashboardResponse{
		PendingReports: pending,
		HiddenPosts:    hidden,
		Keywords:       keywords,
	}, nil
}

// Do dispatches a moderation action and writes it to the audit log.
func (s *AdminService) Do(ctx context.Context, adminID string, req model.AdminActionRequest) error {
	var targetType, targetID string

	switch req.Action {
	case model.ActionApprove:
		if err := s.gallery.SetHidden(ctx, req.TargetID, false); err != nil {
			return s.mapTargetErr(err)
		}
		if err := s.reports.ResolveByPost(ctx, req.TargetID, model.ReportDismissed, adminID); err != nil {
			return err
		}
		targetType, targetID = "post", req.TargetID
		s.invalidatePost(ctx, req.TargetID)

	case model.ActionKeepHidden:
		if err := s.reports.ResolveByPost(ctx, req.TargetID, model.ReportActioned, adminID); err != nil {
			return err
		}
		targetType, targetID = "post", req.TargetID

	case model.ActionRemove:
		if err := s.gallery.SoftDelete(ctx, req.TargetID); err != nil {
			return s.mapTargetErr(err)
		}
		if err := s.reports.ResolveByPost(ctx, req.TargetID, model.ReportActioned, adminID); err != nil {
			return err
		}
		targetType, targetID = "post", req.TargetID
		s.invalidatePost(ctx, req.TargetID)

	case model.ActionBanUser:
		if err := s.users.Ban(ctx, req.TargetID); err != nil {
			return s.mapTargetErr(err)
		}
		targetType, targetID = "user", req.TargetID

	case model.ActionAddKeyword:
		if req.Keyword == "" {
			return fmt.Errorf("keyword required")
		}
		if err := s.keywords.Add(ctx, req.Keyword, adminID); err != nil {
			return err
		}
		targetType, targetID = "keyword", req.Keyword

	case model.ActionRemoveKeyword:
		if err := s.keywords.Remove(ctx, req.KeywordID); err != nil {
			return s.mapTargetErr(err)
		}
		targetType, targetID = "keyword", req.KeywordID

	default:
		return fmt.Errorf("unknown action: %s", req.Action)
	}

	entry := &model.ModerationEntry{
		Action:     req.Action,
		TargetType: targetType,
		TargetID:   targetID,
		AdminID:    adminID,
		Notes:      req.Notes,
	}
	if err := s.audit.Log(ctx, entry); err != nil {
		return err
	}
	log.Printf("admin: %s %s/%s by %s", req.Action, targetType, targetID, adminID)
	return nil
}

func (s *AdminService) mapTargetErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *AdminService) invalidatePost(ctx context.Context, postID string) {
	if err := s.cache.InvalidatePost(ctx, postID); err != nil {
		log.Printf("cache: invalidate post error: %v", err)
	}
	if err := s.cache.InvalidateGallery(ctx); err != nil {
		log.Printf("cache: invalidate gallery error: %v", err)
	}
}
