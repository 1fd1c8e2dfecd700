package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/middleware"
	"clubraise/internal/service/club"
)

type ClubHandler struct {
	clubService club.Service
}

func NewClubHandler(clubService club.Service) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

func (h *ClubHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateClubInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.clubService.Create(c.Context(), user, input)
	if err != nil {
		if errors.Is(err, club.ErrSlugTaken) {
			return middleware.Conflict("Club slug already in use")
		}
		return middleware.BadRequest(err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ClubHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	found, err := h.clubService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, club.ErrClubNotFound) {
			return middleware.NotFound("Club not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *ClubHandler) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return middleware.BadRequest("Club slug is required")
	}

	found, err := h.clubService.GetBySlug(c.Context(), slug)
	if err != nil {
		if errors.Is(err, club.ErrClubNotFound) {
			return middleware.NotFound("Club not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *ClubHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdateClubInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.clubService.Update(c.Context(), user, id, input)
	if err != nil {
		if errors.Is(err, club.ErrClubNotFound) {
			return middleware.NotFound("Club not found")
		}
		if errors.Is(err, club.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage this club")
		}
		return middleware.BadRequest(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *ClubHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.clubService.Delete(c.Context(), user, id); err != nil {
		if errors.Is(err, club.ErrClubNotFound) {
			return middleware.NotFound("Club not found")
		}
		if errors.Is(err, club.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to delete this club")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *ClubHandler) List(c *fiber.Ctx) error {
	result, err := h.clubService.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ClubHandler) ImpactAreas(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	areas, err := h.clubService.ImpactAreas(c.Context(), id)
	if err != nil {
		if errors.Is(err, club.ErrClubNotFound) {
			return middleware.NotFound("Club not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(areas)
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
