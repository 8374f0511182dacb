package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/devconnector/internal/dto"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/identity"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/services"
	"github.com/ahmetcoskunkizilkaya/devconnector/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Test(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Msg: "Users works"})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req validation.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	if res := validation.Register(req); !res.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(res.Errors)
	}

	user, err := h.authService.Register(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FieldErrors{"email": "Email already exists"})
		}
		return internalError(c, "register failed", err)
	}

	return c.JSON(user)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req validation.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}

	if res := validation.Login(req); !res.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(res.Errors)
	}

	resp, err := h.authService.Login(c.UserContext(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.FieldErrors{"email": "User not found"})
		case errors.Is(err, services.ErrPasswordIncorrect):
			return c.Status(fiber.StatusBadRequest).JSON(dto.FieldErrors{"password": "Password incorrect"})
		}
		return internalError(c, "login failed", err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Current(c *fiber.Ctx) error {
	id, err := identity.From(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	return c.JSON(dto.CurrentUserResponse{
		ID:     id.UserID,
		Name:   id.Name,
		Email:  id.Email,
		Avatar: id.Avatar,
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}

func internalError(c *fiber.Ctx, msg string, err error) error {
	slog.Error(msg, "error", err, "method", c.Method(), "path", c.Path(), "request_id", c.GetRespHeader(fiber.HeaderXRequestID))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
