package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/middleware"
	"clubraise/internal/service/campaign"
)

type CampaignHandler struct {
	campaignService campaign.Service
}

func NewCampaignHandler(campaignService campaign.Service) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateCampaignInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.campaignService.Create(c.Context(), user, input)
	if err != nil {
		var gate *campaign.ErrBlockedByTrustGate
		if errors.As(err, &gate) {
			return middleware.Forbidden(gate.Reason)
		}
		if errors.Is(err, campaign.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage campaigns for this club")
		}
		return middleware.BadRequest(err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return middleware.BadRequest("Invalid campaign ID")
	}

	found, err := h.campaignService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, campaign.ErrCampaignNotFound) {
			return middleware.NotFound("Campaign not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return middleware.BadRequest("Invalid campaign ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdateCampaignInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.campaignService.Update(c.Context(), user, id, input)
	if err != nil {
		if errors.Is(err, campaign.ErrCampaignNotFound) {
			return middleware.NotFound("Campaign not found")
		}
		if errors.Is(err, campaign.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage campaigns for this club")
		}
		return middleware.BadRequest(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return middleware.BadRequest("Invalid campaign ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.campaignService.Delete(c.Context(), user, id); err != nil {
		if errors.Is(err, campaign.ErrCampaignNotFound) {
			return middleware.NotFound("Campaign not found")
		}
		if errors.Is(err, campaign.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage campaigns for this club")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *CampaignHandler) ListByClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	result, err := h.campaignService.ListByClub(c.Context(), clubID, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
