package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/creative-copilot/backend/internal/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProtectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Get("/me", AuthMiddleware(secret, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendString(GetUserID(c).String())
	})
	return app
}

func TestRequestIDMiddleware(t *testing.T) {
	app := newProtectedApp("secret")

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-1", resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	_, err = uuid.Parse(resp.Header.Get(fiber.HeaderXRequestID))
	assert.NoError(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	token, err := auth.GenerateJWT("secret", userID, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		target string
		header string
		status int
	}{
		{"bearer header", "/me", "Bearer " + token, fiber.StatusOK},
		{"query token", "/me?token=" + token, "", fiber.StatusOK},
		{"missing", "/me", "", fiber.StatusUnauthorized},
		{"no bearer prefix", "/me", token, fiber.StatusUnauthorized},
		{"bad token", "/me", "Bearer nope", fiber.StatusUnauthorized},
	}
	app := newProtectedApp("secret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, userID.String(), string(body))
			}
		})
	}
}
