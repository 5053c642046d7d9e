package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"github.com/johnsonDevMent/trustmebro/internal/repository"
)

// Session keys.
const (
	SessionUserID  = "user_id"
	SessionGroqKey = "groq_key"
)

// Locals keys populated by LoadUser.
const (
	LocalUserID   = "userID"
	LocalUsername = "username"
	LocalIsAdmin  = "isAdmin"
)

// NewSession returns the cookie session middleware. Cookies are HTTP-only;
// Secure is set in production where the app sits behind TLS.
func NewSession(secure bool) fiber.Handler {
	handler, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
	return handler
}

// LoadUser resolves the session's user once per request and stashes identity
// in locals. Banned users are treated as logged out. Never rejects; the
// Require* guards do that.
func LoadUser(users *repository.UserRepo) fiber.Handler {
	return func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Next()
		}
		uid, _ := sess.Get(SessionUserID).(string)
		if uid == "" {
			return c.Next()
		}

		user, err := users.GetByID(c.Context(), uid)
		if err != nil || user.IsBanned {
			sess.Delete(SessionUserID)
			return c.Next()
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUsername, user.Username)
		c.Locals(LocalIsAdmin, user.IsAdmin)
		return c.Next()
	}
}

// RequireLogin rejects requests without a logged-in user.
func RequireLogin() fiber.Handler {
	return func(c fiber.Ctx) error {
		if uid, ok := c.Locals(LocalUserID).(string); !ok || uid == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "LOGIN_REQUIRED", "You must be logged in to do that.")
		}
		return c.Next()
	}
}

// RequireAdmin rejects requests without an admin user.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		if isAdmin, ok := c.Locals(LocalIsAdmin).(bool); !ok || !isAdmin {
			return ErrorResponse(c, fiber.StatusForbidden, "ADMIN_REQUIRED", "Admin access required.")
		}
		return c.Next()
	}
}

// CurrentUserID returns the logged-in user's ID, or nil for anonymous
// callers.
func CurrentUserID(c fiber.Ctx) *string {
	if uid, ok := c.Locals(LocalUserID).(string); ok && uid != "" {
		return &uid
	}
	return nil
}

// IsAdmin reports whether the caller is an admin.
func IsAdmin(c fiber.Ctx) bool {
	isAdmin, _ := c.Locals(LocalIsAdmin).(bool)
	return isAdmin
}
