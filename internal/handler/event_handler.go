package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/middleware"
	"clubraise/internal/service/event"
)

type EventHandler struct {
	eventService event.Service
}

func NewEventHandler(eventService event.Service) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.eventService.Create(c.Context(), user, input)
	if err != nil {
		var gate *event.ErrBlockedByTrustGate
		if errors.As(err, &gate) {
			return middleware.Forbidden(gate.Reason)
		}
		if errors.Is(err, event.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage events for this club")
		}
		return middleware.BadRequest(err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return middleware.BadRequest("Invalid event ID")
	}

	found, err := h.eventService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return middleware.NotFound("Event not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return middleware.BadRequest("Invalid event ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	var input domain.UpdateEventInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.eventService.Update(c.Context(), user, id, input)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return middleware.NotFound("Event not found")
		}
		if errors.Is(err, event.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage events for this club")
		}
		return middleware.BadRequest(err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return middleware.BadRequest("Invalid event ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.eventService.Delete(c.Context(), user, id); err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			return middleware.NotFound("Event not found")
		}
		if errors.Is(err, event.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage events for this club")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *EventHandler) ListByClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	result, err := h.eventService.ListByClub(c.Context(), clubID, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
