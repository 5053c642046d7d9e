package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/johnsonDevMent/trustmebro/internal/middleware"
	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/service"
)

type GalleryHandler struct {
	svc *service.GalleryService
}

func NewGalleryHandler(svc *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

// List handles GET /gallery
func (h *GalleryHandler) List(c fiber.Ctx) error {
	tab := fiber.Query[string](c, "tab", "trending")
	voice := filterValue(fiber.Query[string](c, "voice"), middleware.ValidVoices)
	template := filterValue(fiber.Query[string](c, "template"), middleware.ValidTemplates)

	resp, err := h.svc.List(c.Context(), tab, voice, template, middleware.CurrentUserID(c))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load gallery")
	}
	return c.JSON(resp)
}

// GetPost handles GET /g/:postId
func (h *GalleryHandler) GetPost(c fiber.Ctx) error {
	postID, errMsg := middleware.ValidateID(c.Params("postId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.GetPost(c.Context(), postID, middleware.CurrentUserID(c), middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Post not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load post")
	}
	return c.JSON(resp)
}

// Publish handles POST /publish/:paperId
func (h *GalleryHandler) Publish(c fiber.Ctx) error {
	paperID, errMsg := middleware.ValidateID(c.Params("paperId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.PublishRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	userID := middleware.CurrentUserID(c)
	if userID == nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "LOGIN_REQUIRED", "You must be logged in to publish.")
	}

	resp, err := h.svc.Publish(c.Context(), paperID, *userID, req.AgreePolicy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPolicyRequired):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "POLICY_REQUIRED", "You must agree to the content policy.")
		case errors.Is(err, service.ErrNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Paper not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to publish paper")
	}
	return c.JSON(resp)
}

// filterValue keeps a gallery filter only when it names a known value;
// "all" and unknown values mean no filter.
func filterValue(v string, valid map[string]bool) string {
	if valid[v] {
		return v
	}
	return ""
}
