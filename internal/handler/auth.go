package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"github.com/johnsonDevMent/trustmebro/internal/middleware"
	"github.com/johnsonDevMent/trustmebro/internal/model"
	"github.com/johnsonDevMent/trustmebro/internal/service"
)

type AuthHandler struct {
	svc        *service.AuthService
	setupToken string
}

func NewAuthHandler(svc *service.AuthService, setupToken string) *AuthHandler {
	return &AuthHandler{svc: svc, setupToken: setupToken}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req model.SignupRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	username, errMsg := middleware.ValidateUsername(req.Username)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	if errMsg := middleware.ValidatePassword(req.Password); errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	if req.Password != req.Confirm {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "Passwords do not match.")
	}

	user, err := h.svc.Signup(c.Context(), username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "USERNAME_TAKEN", "That username is already taken.")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create account")
	}

	h.logIn(c, user.ID)
	return c.JSON(model.AuthResponse{Success: true, Username: user.Username, IsAdmin: user.IsAdmin})
}

// Login handles POST /login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	user, err := h.svc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadCredentials):
			return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "BAD_CREDENTIALS", "Invalid username or password.")
		case errors.Is(err, service.ErrBanned):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "BANNED", "This account has been banned.")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
	}

	h.logIn(c, user.ID)
	return c.JSON(model.AuthResponse{Success: true, Username: user.Username, IsAdmin: user.IsAdmin})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		if err := sess.Destroy(); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log out")
		}
	}
	return c.JSON(fiber.Map{"success": true})
}

// SaveGroqKey handles POST /save_groq_key. An empty key clears the stored
// key; the client uses that as its clearing mechanism.
func (h *AuthHandler) SaveGroqKey(c fiber.Ctx) error {
	var req model.SaveKeyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	sess := session.FromContext(c)
	if sess == nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Session unavailable")
	}
	if req.Key == "" {
		sess.Delete(middleware.SessionGroqKey)
	} else {
		sess.Set(middleware.SessionGroqKey, req.Key)
	}
	return c.JSON(fiber.Map{"success": true})
}

// SetupAdmin handles POST /setup-admin. One-time bootstrap: promotes the
// named user while no admin exists yet.
func (h *AuthHandler) SetupAdmin(c fiber.Ctx) error {
	var req model.SetupAdminRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if err := h.svc.SetupAdmin(c.Context(), req.Token, h.setupToken, req.Username); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "Admin setup is not available.")
		case errors.Is(err, service.ErrNotFound):
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to set up admin")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) logIn(c fiber.Ctx, userID string) {
	if sess := session.FromContext(c); sess != nil {
		sess.Set(middleware.SessionUserID, userID)
	}
}
