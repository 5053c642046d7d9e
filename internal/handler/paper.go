package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"github.com/johnsonDevMent/trustmebro/internal/middleware"
	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/service"
)

type PaperHandler struct {
	svc *service.PaperService
}

func NewPaperHandler(svc *service.PaperService) *PaperHandler {
	return &PaperHandler{svc: svc}
}

// Generate handles POST /generate
func (h *PaperHandler) Generate(c fiber.Ctx) error {
	var req model.GenerateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	claim, errMsg := middleware.ValidateClaim(req.Claim)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Claim = claim

	template, length, voice, tone, chartCount, errMsg := middleware.ValidateGenerateOptions(
		req.Template, req.Length, req.Voice, req.Tone, req.ChartCount)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Template, req.Length, req.Voice, req.Tone, req.ChartCount = template, length, voice, tone, chartCount

	// Key from the body wins and is remembered for the session.
	groqKey := req.GroqKey
	sess := session.FromContext(c)
	if groqKey == "" && sess != nil {
		groqKey, _ = sess.Get(middleware.SessionGroqKey).(string)
	} else if groqKey != "" && sess != nil {
		sess.Set(middleware.SessionGroqKey, groqKey)
	}

	resp, err := h.svc.Generate(c.Context(), req, middleware.CurrentUserID(c), groqKey)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBlockedClaim):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "BLOCKED_CONTENT", "Your claim contains content that is not allowed.")
		case errors.Is(err, service.ErrKeyRequired):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "KEY_REQUIRED", "Short and Full papers require a Groq API key.")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate paper")
	}

	if !resp.Existing {
		Metrics.PapersGenerated.WithLabelValues(req.Length).Inc()
	}
	return c.JSON(resp)
}

// Get handles GET /paper/:paperId
func (h *PaperHandler) Get(c fiber.Ctx) error {
	paperID, errMsg := middleware.ValidateID(c.Params("paperId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.Get(c.Context(), paperID, middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Paper not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load paper")
	}

	return c.JSON(resp)
}
