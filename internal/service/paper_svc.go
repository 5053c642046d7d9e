package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/johnsonDevMent/trustmebro/internal/generator"
	"github.com/johnsonDevMent/trustmebro/internal/groq"
	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/repository"
	"github.com/johnsonDevMent/trustmebro/pkg/ident"
)

type PaperService struct {
	papers   *repository.PaperRepo
	keywords *repository.KeywordRepo
	gallery  *repository.GalleryRepo
	gen      *generator.Generator
}

func NewPaperService(papers *repository.PaperRepo, keywords *repository.KeywordRepo, gallery *repository.GalleryRepo, gen *generator.Generator) *PaperService {
	return &PaperService{papers: papers, keywords: keywords, gallery: gallery, gen: gen}
}

// Generate produces a paper for the request, or returns the existing one when
// an identical request was generated before. groqKey comes from the request
// body or the caller's session; short and full papers require one.
func (s *PaperService) Generate(ctx context.Context, req model.GenerateRequest, userID *string, groqKey string) (*model.GenerateResponse, error) {
	blocked, err := s.claimBlocked(ctx, req.Claim)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrBlockedClaim
	}

	if req.Length != model.LengthAbstract && groqKey == "" {
		return nil, ErrKeyRequired
	}

	fp := ident.Fingerprint(req.Claim, req.Template, req.Length, req.Voice, req.Tone, req.ChartCount, req.LockSeed)
	if existing, err := s.papers.GetByFingerprint(ctx, fp); err == nil {
		return &model.GenerateResponse{
			Success:  true,
			PaperID:  existing.PaperID,
			PaperURL: paperURL(existing.PaperID),
			Existing: true,
		}, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	paper := s.gen.Generate(ctx, generator.Options{
		Claim:      req.Claim,
		Template:   req.Template,
		Length:     req.Length,
		Voice:      req.Voice,
		Tone:       req.Tone,
		ChartCount: req.ChartCount,
		LockSeed:   req.LockSeed,
		GroqClient: groq.NewClient(groqKey),
	})
	paper.UserID = userID

	if err := s.papers.Insert(ctx, paper); err != nil {
		return nil, err
	}
	log.Printf("paper: generated %s (length=%s voice=%s)", paper.PaperID, paper.Length, paper.Voice)

	return &model.GenerateResponse{
		Success:  true,
		PaperID:  paper.PaperID,
		PaperURL: paperURL(paper.PaperID),
	}, nil
}

// Get returns the paper with its publish state. IsOwner is true when the
// caller generated it.
func (s *PaperService) Get(ctx context.Context, paperID string, userID *string) (*model.PaperResponse, error) {
	paper, err := s.papers.GetByID(ctx, paperID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	resp := &model.PaperResponse{Paper: paper}
	if userID != nil && paper.UserID != nil && *paper.UserID == *userID {
		resp.IsOwner = true
	}

	post, err := s.gallery.GetActiveByPaperID(ctx, paperID)
	if err == nil {
		resp.Published = true
		resp.PostID = post.PostID
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return resp, nil
}

// claimBlocked checks the claim against the moderation keyword list with a
// case-insensitive substring match.
func (s *PaperService) claimBlocked(ctx context.Context, claim string) (bool, error) {
	keywords, err := s.keywords.List(ctx)
	if err != nil {
		return false, err
	}
	return matchesKeyword(claim, keywords), nil
}

func matchesKeyword(claim string, keywords []model.Keyword) bool {
	lower := strings.ToLower(claim)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw.Keyword)) {
			return true
		}
	}
	return false
}

func paperURL(paperID string) string {
	return fmt.Sprintf("/paper/%s", paperID)
}
