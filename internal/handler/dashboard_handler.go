package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubraise/internal/middleware"
	"clubraise/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	stats, err := h.dashboardService.GetStats(c.Context(), clubID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
