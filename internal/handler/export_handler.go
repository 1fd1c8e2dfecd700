package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubraise/internal/middleware"
	"clubraise/internal/service/export"
)

type ExportHandler struct {
	exportService export.Service
}

func NewExportHandler(exportService export.Service) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) SupportersCSV(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	data, err := h.exportService.ExportSupportersCSV(c.Context(), clubID)
	if err != nil {
		return err
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="supporters.csv"`)
	return c.Status(fiber.StatusOK).Send(data)
}

func (h *ExportHandler) ImpactCSV(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	data, err := h.exportService.ExportImpactCSV(c.Context(), clubID)
	if err != nil {
		return err
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="impact_updates.csv"`)
	return c.Status(fiber.StatusOK).Send(data)
}
