package middleware

import (
	"strings"

	"foodgram/domain"
	"foodgram/internal/api/presenters"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalsUserID = "user_id"
	LocalsToken  = "token"
)

// AuthMiddleware rejects requests without a valid, non-revoked token.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := extractToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenNotFound)
		}

		return authenticate(c, jwtService, token)
	}
}

// OptionalAuthMiddleware lets anonymous requests through. A token that is
// present must still be valid.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := extractToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return c.Next()
		}

		return authenticate(c, jwtService, token)
	}
}

func authenticate(c *fiber.Ctx, jwtService jwt.JWTService, token string) error {
	userID, err := jwtService.GetUserIDByToken(c.UserContext(), token)
	if err != nil {
		status := presenters.StatusCode(err)
		if status != fiber.StatusUnauthorized {
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedTokenInvalid, err)
	}

	c.Locals(LocalsUserID, userID)
	c.Locals(LocalsToken, token)
	return c.Next()
}

// extractToken accepts "Token <jwt>" and "Bearer <jwt>".
func extractToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return "", false
	}
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}

// UserID returns the authenticated user id, or "" for anonymous requests.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(LocalsUserID).(string)
	return userID
}

func Token(c *fiber.Ctx) string {
	token, _ := c.Locals(LocalsToken).(string)
	return token
}
