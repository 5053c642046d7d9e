package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/johnsonDevMent/trustmebro/internal/middleware"
	"github.com/johnsonDevMent/trustmebro/internal/service"
)

type ShareHandler struct {
	svc *service.ShareService
}

func NewShareHandler(svc *service.ShareService) *ShareHandler {
	return &ShareHandler{svc: svc}
}

// Create handles POST /create_share/:paperId
func (h *ShareHandler) Create(c fiber.Ctx) error {
	paperID, errMsg := middleware.ValidateID(c.Params("paperId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.Create(c.Context(), paperID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Paper not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create share link")
	}

	return c.JSON(resp)
}

// View handles GET /share/:token
func (h *ShareHandler) View(c fiber.Ctx) error {
	token, errMsg := middleware.ValidateID(c.Params("token"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.Resolve(c.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExpired):
			return c.Status(fiber.StatusGone).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "SHARE_EXPIRED",
					"message": "This share link has expired.",
					"reason":  "expired",
				},
			})
		case errors.Is(err, service.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "NOT_FOUND",
					"message": "This share link does not exist.",
					"reason":  "not_found",
				},
			})
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load shared paper")
	}

	return c.JSON(resp)
}
