package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/repository"
)

// Auto-moderation thresholds over distinct pending reporters.
const (
	autoHideReporters   = 5
	quarantineHour      = 3
	quarantineDay       = 6
	autoHideWindow      = time.Hour
	quarantineDayWindow = 24 * time.Hour
)

type ReportService struct {
	reports *repository.ReportRepo
	gallery *repository.GalleryRepo
	cache   *CacheService
}

func NewReportService(reports *repository.ReportRepo, gallery *repository.GalleryRepo, cache *CacheService) *ReportService {
	return &ReportService{reports: reports, gallery: gallery, cache: cache}
}

// Submit records a report against a post and applies the auto-moderation
// thresholds. Reporters may be anonymous.
func (s *ReportService) Submit(ctx context.Context, postID string, userID *string, reason, notes string) (*model.ReportResponse, error) {
	if _, err := s.gallery.GetPost(ctx, postID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.reports.Insert(ctx, postID, userID, reason, notes); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lastHour, err := s.reports.CountDistinctReporters(ctx, postID, now.Add(-autoHideWindow))
	if err != nil {
		return nil, err
	}
	lastDay, err := s.reports.CountDistinctReporters(ctx, postID, now.Add(-quarantineDayWindow))
	if err != nil {
		return nil, err
	}

	resp := &model.ReportResponse{Success: true}
	switch Escalation(lastHour, lastDay) {
	case EscalateHide:
		if err := s.gallery.SetHidden(ctx, postID, true); err != nil {
			return nil, err
		}
		resp.AutoHidden = true
		log.Printf("report: post %s auto-hidden (%d reporters in the last hour)", postID, lastHour)
		if err := s.cache.InvalidatePost(ctx, postID); err != nil {
			log.Printf("cache: invalidate post error: %v", err)
		}
		if err := s.cache.InvalidateGallery(ctx); err != nil {
			log.Printf("cache: invalidate gallery error: %v", err)
		}
	case EscalateQuarantine:
		log.Printf("report: post %s flagged for review (%d reporters/1h, %d reporters/24h)", postID, lastHour, lastDay)
	}

	return resp, nil
}

// Escalation levels for a reported post.
type EscalationLevel int

const (
	EscalateNone EscalationLevel = iota
	EscalateQuarantine
	EscalateHide
)

// Escalation decides what happens to a post given distinct pending reporter
// counts over the last hour and the last 24 hours.
func Escalation(lastHour, lastDay int) EscalationLevel {
	if lastHour >= autoHideReporters {
		return EscalateHide
	}
	if lastHour >= quarantineHour || lastDay >= quarantineDay {
		return EscalateQuarantine
	}
	return EscalateNone
}
