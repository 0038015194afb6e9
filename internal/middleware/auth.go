package middleware

import (
	"strings"

	"github.com/creative-copilot/backend/internal/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const CtxUserID = "user_id"

// AuthMiddleware accepts a bearer header, or a token query parameter for
// websocket upgrades where browsers cannot set headers.
func AuthMiddleware(secret string, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr, ok := bearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing or malformed authorization"})
		}

		claims, err := auth.ParseJWT(secret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(CtxUserID, claims.UserID)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	if h := c.Get("Authorization"); h != "" {
		tok := strings.TrimPrefix(h, "Bearer ")
		return tok, tok != h && tok != ""
	}
	tok := c.Query("token")
	return tok, tok != ""
}

func GetUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(CtxUserID).(uuid.UUID)
	return id
}
