package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/middleware"
	"clubraise/internal/service/supporter"
)

type SupporterHandler struct {
	supporterService supporter.Service
}

func NewSupporterHandler(supporterService supporter.Service) *SupporterHandler {
	return &SupporterHandler{supporterService: supporterService}
}

func (h *SupporterHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateSupporterInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.supporterService.Create(c.Context(), user, input)
	if err != nil {
		if errors.Is(err, supporter.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage supporters for this club")
		}
		return middleware.BadRequest(err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *SupporterHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("supporterId"))
	if err != nil {
		return middleware.BadRequest("Invalid supporter ID")
	}

	found, err := h.supporterService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, supporter.ErrSupporterNotFound) {
			return middleware.NotFound("Supporter not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *SupporterHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("supporterId"))
	if err != nil {
		return middleware.BadRequest("Invalid supporter ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdateSupporterInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.supporterService.Update(c.Context(), user, id, input)
	if err != nil {
		if errors.Is(err, supporter.ErrSupporterNotFound) {
			return middleware.NotFound("Supporter not found")
		}
		if errors.Is(err, supporter.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage supporters for this club")
		}
		return middleware.BadRequest(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *SupporterHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("supporterId"))
	if err != nil {
		return middleware.BadRequest("Invalid supporter ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.supporterService.Delete(c.Context(), user, id); err != nil {
		if errors.Is(err, supporter.ErrSupporterNotFound) {
			return middleware.NotFound("Supporter not found")
		}
		if errors.Is(err, supporter.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage supporters for this club")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *SupporterHandler) ListByClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	filter := domain.SupporterFilter{Search: c.Query("search")}
	if typeStr := c.Query("type"); typeStr != "" {
		supporterType := domain.SupporterType(typeStr)
		if !supporterType.IsValid() {
			return middleware.BadRequest("Unknown supporter type filter")
		}
		filter.Type = &supporterType
	}

	result, err := h.supporterService.ListByClub(c.Context(), clubID, filter, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
