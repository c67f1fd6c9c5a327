package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/nutriclin/nutriclin/internal/services"
)

// SetupStatus reports whether the first-run setup still has to happen.
func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	needsSetup, err := handler.authService.RequiresInitialSetup()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "storage failure")
	}
	return c.JSON(fiber.Map{"needs_setup": needsSetup})
}

// Setup creates the professional's account. It only works once; later
// calls are rejected with 409.
func (handler *Handler) Setup(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.CreateInitialUser(credentials.Email, credentials.Password, credentials.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSetupAlreadyCompleted):
			return apiError(c, fiber.StatusConflict, "setup already completed")
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid credentials")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "password too weak")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":    true,
		"email": user.Email,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(credentials.Email, credentials.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{
		"ok":                   true,
		"display_name":         user.DisplayName,
		"must_change_password": user.MustChangePassword,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if strings.TrimSpace(input.NewPassword) != strings.TrimSpace(input.ConfirmPassword) {
		return apiError(c, fiber.StatusBadRequest, "passwords do not match")
	}

	err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword)
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"ok": true})
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "password too weak")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to change password")
	}
}
