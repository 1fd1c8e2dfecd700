package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/middleware"
	"clubraise/internal/service/prize"
)

type PrizeHandler struct {
	prizeService prize.Service
}

func NewPrizeHandler(prizeService prize.Service) *PrizeHandler {
	return &PrizeHandler{prizeService: prizeService}
}

func (h *PrizeHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreatePrizeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.prizeService.Create(c.Context(), user, input)
	if err != nil {
		if errors.Is(err, prize.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage prizes for this club")
		}
		return middleware.BadRequest(err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *PrizeHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("prizeId"))
	if err != nil {
		return middleware.BadRequest("Invalid prize ID")
	}

	found, err := h.prizeService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, prize.ErrPrizeNotFound) {
			return middleware.NotFound("Prize not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *PrizeHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("prizeId"))
	if err != nil {
		return middleware.BadRequest("Invalid prize ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdatePrizeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.prizeService.Update(c.Context(), user, id, input)
	if err != nil {
		return h.mapPrizeError(err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *PrizeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("prizeId"))
	if err != nil {
		return middleware.BadRequest("Invalid prize ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.prizeService.Delete(c.Context(), user, id); err != nil {
		return h.mapPrizeError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *PrizeHandler) ListByClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	result, err := h.prizeService.ListByClub(c.Context(), clubID, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PrizeHandler) Award(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("prizeId"))
	if err != nil {
		return middleware.BadRequest("Invalid prize ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.AwardPrizeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	awarded, err := h.prizeService.Award(c.Context(), user, id, input)
	if err != nil {
		return h.mapPrizeError(err)
	}

	return c.Status(fiber.StatusOK).JSON(awarded)
}

func (h *PrizeHandler) mapPrizeError(err error) error {
	switch {
	case errors.Is(err, prize.ErrPrizeNotFound):
		return middleware.NotFound("Prize not found")
	case errors.Is(err, prize.ErrNotAllowed):
		return middleware.Forbidden("Not allowed to manage prizes for this club")
	case errors.Is(err, prize.ErrAlreadyAwarded):
		return middleware.Conflict("Prize has already been awarded")
	case errors.Is(err, prize.ErrSupporterNotFound):
		return middleware.BadRequest("Supporter not found")
	case errors.Is(err, prize.ErrWrongClub):
		return middleware.BadRequest("Supporter belongs to a different club")
	default:
		return err
	}
}
