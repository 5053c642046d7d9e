package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/johnsonDevMent/trustmebro/internal/middleware"
	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/service"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Dashboard handles GET /admin
func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	resp, err := h.svc.Dashboard(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load dashboard")
	}
	return c.JSON(resp)
}

// Action handles POST /admin/action
func (h *AdminHandler) Action(c fiber.Ctx) error {
	var req model.AdminActionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	adminID := middleware.CurrentUserID(c)
	if adminID == nil {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "ADMIN_REQUIRED", "Admin access required.")
	}

	if err := h.svc.Do(c.Context(), *adminID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Target not found")
		case strings.HasPrefix(err.Error(), "unknown action"):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "UNKNOWN_ACTION", err.Error())
		case strings.Contains(err.Error(), "keyword required"):
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "Keyword is required.")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to apply action")
	}

	return c.JSON(model.AdminActionResponse{Success: true})
}
