package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/johnsonDevMent/trustmebro/internal/middleware"
	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Submit handles POST /report/:postId. Reporters may be anonymous.
func (h *ReportHandler) Submit(c fiber.Ctx) error {
	postID, errMsg := middleware.ValidateID(c.Params("postId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	var req model.ReportRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	reason, notes, errMsg := middleware.ValidateReportReason(req.Reason, req.Notes)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	resp, err := h.svc.Submit(c.Context(), postID, middleware.CurrentUserID(c), reason, notes)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Post not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit report")
	}

	Metrics.ReportsTotal.Inc()
	if resp.AutoHidden {
		Metrics.AutoHiddenTotal.Inc()
	}
	return c.JSON(resp)
}
