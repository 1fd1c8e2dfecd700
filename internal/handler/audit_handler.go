package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubraise/internal/middleware"
	"clubraise/internal/service/audit"
)

type AuditHandler struct {
	auditService audit.Service
}

func NewAuditHandler(auditService audit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) ListByClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	result, err := h.auditService.ListByClub(c.Context(), clubID, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AuditHandler) RecentActivity(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	logs, err := h.auditService.RecentActivity(c.Context(), clubID, limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(logs)
}
