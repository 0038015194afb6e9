package handlers

import (
	"time"

	"github.com/creative-copilot/backend/internal/auth"
	"github.com/creative-copilot/backend/internal/http/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthHandler struct {
	secret     string
	expiration time.Duration
	log        *zap.Logger
}

func NewAuthHandler(secret string, expiration time.Duration, log *zap.Logger) *AuthHandler {
	return &AuthHandler{secret: secret, expiration: expiration, log: log}
}

// Guest issues a token for a fresh anonymous user. Saved campaigns belong to that id.
func (h *AuthHandler) Guest(c *fiber.Ctx) error {
	userID := uuid.New()
	token, err := auth.GenerateJWT(h.secret, userID, h.expiration)
	if err != nil {
		return failWith(c, h.log, "generate jwt", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{Token: token, UserID: userID.String()})
}
