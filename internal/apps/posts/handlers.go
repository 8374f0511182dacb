package posts

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
	return c.JSON(dto.MessageResponse{Msg: "Posts works"})
}

func (h *Handler) List(c *fiber.Ctx) error {
	posts, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(posts)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	post, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(post)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	var req validation.PostInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if res := validation.Post(req); !res.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(res.Errors)
	}

	post, err := h.service.Create(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(post)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.service.Delete(c.UserContext(), id, c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *Handler) Like(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	post, err := h.service.Like(c.UserContext(), id, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(post)
}

func (h *Handler) Unlike(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	post, err := h.service.Unlike(c.UserContext(), id, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(post)
}

func (h *Handler) AddComment(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	var req validation.PostInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if res := validation.Post(req); !res.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(res.Errors)
	}

	post, err := h.service.AddComment(c.UserContext(), id, c.Params("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(post)
}

func (h *Handler) DeleteComment(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return unauthorized(c)
	}

	post, err := h.service.DeleteComment(c.UserContext(), id, c.Params("id"), c.Params("comment_id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(post)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.FieldErrors{"nopostfound": "No post found with this id"})
	case errors.Is(err, ErrNotAuthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.FieldErrors{"notauthorized": "User not authorized"})
	case errors.Is(err, ErrAlreadyLiked):
		return c.Status(fiber.StatusBadRequest).JSON(dto.FieldErrors{"alreadyliked": "User already liked this post"})
	case errors.Is(err, ErrNotLiked):
		return c.Status(fiber.StatusBadRequest).JSON(dto.FieldErrors{"notliked": "You have not yet liked this post"})
	case errors.Is(err, ErrCommentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.FieldErrors{"commentnotexist": "Comment does not exist"})
	}

	slog.Error("posts request failed", "error", err, "method", c.Method(), "path", c.Path())
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
