package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"clubraise/internal/domain"
	"clubraise/internal/middleware"
	"clubraise/internal/service/media"
)

type MediaHandler struct {
	mediaService media.Service
}

func NewMediaHandler(mediaService media.Service) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	clubID, err := uuid.Parse(c.FormValue("club_id"))
	if err != nil {
		return middleware.BadRequest("Valid club_id is required")
	}

	kind := domain.MediaKind(c.FormValue("kind", string(domain.MediaKindImage)))
	if !kind.IsValid() {
		return middleware.BadRequest("Unknown media kind")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	if file.Size > 10*1024*1024 {
		return middleware.BadRequest("File size must be less than 10MB")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	var caption *string
	if cap := c.FormValue("caption"); cap != "" {
		caption = &cap
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	uploaded, err := h.mediaService.Upload(c.Context(), user, clubID, kind, caption, file.Filename, file.Size, mimeType, fileReader)
	if err != nil {
		if errors.Is(err, media.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage media for this club")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(uploaded)
}

func (h *MediaHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("mediaId"))
	if err != nil {
		return middleware.BadRequest("Invalid media ID")
	}

	found, err := h.mediaService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, media.ErrMediaNotFound) {
			return middleware.NotFound("Media not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("mediaId"))
	if err != nil {
		return middleware.BadRequest("Invalid media ID")
	}

	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	if err := h.mediaService.Delete(c.Context(), user, id); err != nil {
		if errors.Is(err, media.ErrMediaNotFound) {
			return middleware.NotFound("Media not found")
		}
		if errors.Is(err, media.ErrNotAllowed) {
			return middleware.Forbidden("Not allowed to manage media for this club")
		}
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *MediaHandler) ListByClub(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("clubId"))
	if err != nil {
		return middleware.BadRequest("Invalid club ID")
	}

	var kind *domain.MediaKind
	if kindStr := c.Query("kind"); kindStr != "" {
		k := domain.MediaKind(kindStr)
		if !k.IsValid() {
			return middleware.BadRequest("Unknown media kind filter")
		}
		kind = &k
	}

	result, err := h.mediaService.ListByClub(c.Context(), clubID, kind, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
