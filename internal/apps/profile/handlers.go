package profile

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/dto"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/identity"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Test(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Msg: "Profile works"})
}

func (h *Handler) Current(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	p, err := h.service.Current(c.UserContext(), id)
	if errors.Is(err, ErrProfileNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.FieldErrors{"noprofile": "No profile exists for this user"})
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) All(c *fiber.Ctx) error {
	profiles, err := h.service.All(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(profiles)
}

func (h *Handler) ByHandle(c *fiber.Ctx) error {
	p, err := h.service.ByHandle(c.UserContext(), c.Params("handle"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) ByUser(c *fiber.Ctx) error {
	p, err := h.service.ByUser(c.UserContext(), c.Params("user_id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) Upsert(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	var req validation.ProfileInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if res := validation.Profile(req); !res.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(res.Errors)
	}

	p, err := h.service.Upsert(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	var req validation.ExperienceInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if res := validation.Experience(req); !res.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(res.Errors)
	}

	p, err := h.service.AddExperience(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	p, err := h.service.RemoveExperience(c.UserContext(), id, c.Params("exp_id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	var req validation.EducationInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if res := validation.Education(req); !res.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(res.Errors)
	}

	p, err := h.service.AddEducation(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	p, err := h.service.RemoveEducation(c.UserContext(), id, c.Params("edu_id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// fail maps service errors onto the keyed error bodies clients expect.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.FieldErrors{"noprofile": "There is no profile for this user"})
	case errors.Is(err, ErrNoProfiles):
		return c.Status(fiber.StatusNotFound).JSON(dto.FieldErrors{"noprofile": "There are no profiles"})
	case errors.Is(err, ErrHandleTaken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.FieldErrors{"handle": "That handle already exists"})
	case errors.Is(err, ErrExperienceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.FieldErrors{"noexperience": "Experience does not exist"})
	case errors.Is(err, ErrEducationNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.FieldErrors{"noeducation": "Education does not exist"})
	}

	slog.Error("profile request failed", "error", err, "method", c.Method(), "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}
