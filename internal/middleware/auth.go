package middleware

import (
	"context"
	"strings"

	"careerflow/internal/models"

	"github.com/gofiber/fiber/v2"
)

// TokenVerifier resolves a bearer token into the caller's identity.
type TokenVerifier interface {
	ParseToken(ctx context.Context, token string) (models.Identity, error)
}

// Protect rejects requests without a valid bearer token with 401 before any handler runs,
// and attaches the resolved identity to the request.
func Protect(v TokenVerifier) fiber.Handler {
	return authenticate(v, false)
}

// ProtectWebSocket is Protect for upgrade requests, which may carry the token in the `token` query parameter
// because browsers cannot set headers on a websocket handshake.
func ProtectWebSocket(v TokenVerifier) fiber.Handler {
	return authenticate(v, true)
}

func authenticate(v TokenVerifier, allowQuery bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" && allowQuery {
			token = c.Query("token")
		}
		if token == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Not authorized, no token"))
		}

		identity, err := v.ParseToken(c.UserContext(), token)
		if err != nil {
			if models.ErrorCode(err) != models.CodeUnauthorized {
				err = models.NewUnauthorizedError("Not authorized, token failed")
			}
			return models.RespondWithError(c, fiber.StatusUnauthorized, err)
		}

		c.Locals(LocalUserID, identity.UserID)
		c.Locals(LocalRole, identity.Role)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, identity.UserID))

		return c.Next()
	}
}

// BearerToken extracts the token from an `Authorization: Bearer <token>` header.
func BearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// IdentityFrom returns the identity attached by Protect.
func IdentityFrom(c *fiber.Ctx) (models.Identity, bool) {
	uid, ok := c.Locals(LocalUserID).(uint)
	if !ok || uid == 0 {
		return models.Identity{}, false
	}
	role, _ := c.Locals(LocalRole).(models.Role)
	return models.Identity{UserID: uid, Role: role}, true
}
