package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/middleware"
	"clubraise/internal/service/impact"
	"clubraise/internal/service/trust"
)

type ImpactHandler struct {
	impactService impact.Service
	trustService  trust.Service
}

func NewImpactHandler(impactService impact.Service, trustService trust.Service) *ImpactHandler {
	return &ImpactHandler{
		impactService: impactService,
		trustService:  trustService,
	}
}

func (h *ImpactHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateImpactInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	update, err := h.impactService.Create(c.Context(), user, input)
	if err != nil {
		return h.mapImpactError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(update)
}

func (h *ImpactHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("impactId"))
	if err != nil {
		return middleware.BadRequest("Invalid impact update ID")
	}

	update, err := h.impactService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrImpactNotFound) {
			return middleware.NotFound("Impact update not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(update)
}

func (h *ImpactHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("impactId"))
	if err != nil {
		return middleware.BadRequest("Invalid impact update ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdateImpactInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	update, err := h.impactService.Update(c.Context(), user, id, input)
	if err != nil {
		return h.mapImpactError(err)
	}

	return c.Status(fiber.StatusOK).JSON(update)
}

func (h *ImpactHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("impactId"))
	if err != nil {
		return middleware.BadRequest("Invalid impact update ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.impactService.Delete(c.Context(), user, id, requestMeta(c)); err != nil {
		return h.mapImpactError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *ImpactHandler) Publish(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("impactId"))
	if err != nil {
		return middleware.BadRequest("Invalid impact update ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	update, err := h.impactService.Publish(c.Context(), user, id, requestMeta(c))
	if err != nil {
		return h.mapImpactError(err)
	}

	return c.Status(fiber.StatusOK).JSON(update)
}

func (h *ImpactHandler) Validation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("impactId"))
	if err != nil {
		return middleware.BadRequest("Invalid impact update ID")
	}

	validation, err := h.impactService.Validation(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrImpactNotFound) {
			return middleware.NotFound("Impact update not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(validation)
}

func (h *ImpactHandler) Verify(c *fiber.Ctx) error {
	return h.moderate(c, h.impactService.Verify)
}

func (h *ImpactHandler) Flag(c *fiber.Ctx) error {
	return h.moderate(c, h.impactService.Flag)
}

func (h *ImpactHandler) moderate(c *fiber.Ctx, action func(ctx context.Context, user *domain.User, id uuid.UUID, meta *impact.RequestMeta) error) error {
	id, err := uuid.Parse(c.Params("impactId"))
	if err != nil {
		return middleware.BadRequest("Invalid impact update ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := action(c.Context(), user, id, requestMeta(c)); err != nil {
		return h.mapImpactError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Impact update status changed",
	})
}

func (h *ImpactHandler) CanMarkFinal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("impactId"))
	if err != nil {
		return middleware.BadRequest("Invalid impact update ID")
	}

	decision, err := h.impactService.CanMarkFinal(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrImpactNotFound) {
			return middleware.NotFound("Impact update not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(decision)
}

func (h *ImpactHandler) MarkFinal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("impactId"))
	if err != nil {
		return middleware.BadRequest("Invalid impact update ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	update, err := h.impactService.MarkFinal(c.Context(), user, id, requestMeta(c))
	if err != nil {
		var finalizeErr *domain.FinalizeError
		if errors.As(err, &finalizeErr) {
			return middleware.Conflict(finalizeErr.Reason)
		}
		return h.mapImpactError(err)
	}

	return c.Status(fiber.StatusOK).JSON(update)
}

func (h *ImpactHandler) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return middleware.BadRequest("Invalid event ID")
	}

	status, err := statusFilter(c)
	if err != nil {
		return err
	}

	updates, err := h.impactService.ListByEvent(c.Context(), eventID, status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updates)
}

func (h *ImpactHandler) EventSummary(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return middleware.BadRequest("Invalid event ID")
	}

	summary, err := h.impactService.EventSummary(c.Context(), eventID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}

func (h *ImpactHandler) ListByCampaign(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return middleware.BadRequest("Invalid campaign ID")
	}

	status, err := statusFilter(c)
	if err != nil {
		return err
	}

	updates, err := h.impactService.ListByCampaign(c.Context(), campaignID, status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updates)
}

func (h *ImpactHandler) CampaignSummary(c *fiber.Ctx) error {
	campaignID, err := uuid.Parse(c.Params("campaignId"))
	if err != nil {
		return middleware.BadRequest("Invalid campaign ID")
	}

	summary, err := h.impactService.CampaignSummary(c.Context(), campaignID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}

func (h *ImpactHandler) ListByClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	status, err := statusFilter(c)
	if err != nil {
		return err
	}

	filter := domain.ImpactFilter{Status: status}
	if eidStr := c.Query("event_id"); eidStr != "" {
		eid, err := uuid.Parse(eidStr)
		if err != nil {
			return middleware.BadRequest("Invalid event_id filter")
		}
		filter.EventID = &eid
	}
	if cidStr := c.Query("campaign_id"); cidStr != "" {
		cid, err := uuid.Parse(cidStr)
		if err != nil {
			return middleware.BadRequest("Invalid campaign_id filter")
		}
		filter.CampaignID = &cid
	}

	result, err := h.impactService.ListByClub(c.Context(), clubID, filter, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ImpactHandler) ClubScore(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	score, err := h.impactService.ClubScore(c.Context(), clubID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(score)
}

func (h *ImpactHandler) TrustStatus(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	status, err := h.trustService.Status(c.Context(), clubID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(status)
}

func (h *ImpactHandler) mapImpactError(err error) error {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return middleware.UnprocessableEntity(validationErr.Reason)
	case errors.Is(err, domain.ErrImpactNotFound):
		return middleware.NotFound("Impact update not found")
	case errors.Is(err, domain.ErrImpactNotAllowed):
		return middleware.Forbidden("Not allowed to manage impact updates for this club")
	case errors.Is(err, domain.ErrImpactNotDraft):
		return middleware.Conflict("Only draft impact updates can be modified")
	case errors.Is(err, domain.ErrImpactFinalized):
		return middleware.Conflict("Impact reporting for this event has been finalized")
	case errors.Is(err, impact.ErrNoTransition):
		return middleware.UnprocessableEntity(err.Error())
	default:
		return err
	}
}

func statusFilter(c *fiber.Ctx) (*domain.ImpactStatus, error) {
	raw := c.Query("status")
	if raw == "" {
		return nil, nil
	}
	status := domain.ImpactStatus(raw)
	if !status.IsValid() {
		return nil, middleware.BadRequest("Unknown impact status filter")
	}
	return &status, nil
}

func requestMeta(c *fiber.Ctx) *impact.RequestMeta {
	return &impact.RequestMeta{
		IPAddress: middleware.GetIPAddress(c),
		UserAgent: middleware.GetUserAgentFromContext(c),
	}
}
