package handlers

import (
	"errors"

	"github.com/creative-copilot/backend/internal/briefparser"
	"github.com/creative-copilot/backend/internal/engine"
	"github.com/creative-copilot/backend/internal/http/dto"
	"github.com/creative-copilot/backend/internal/middleware"
	"github.com/creative-copilot/backend/internal/repositories"
	"github.com/creative-copilot/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, RequestID: middleware.GetRequestID(c)})
}

// failWith maps service errors onto status codes. Anything unrecognised is a 500.
func failWith(c *fiber.Ctx, log *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, engine.ErrStructural), errors.Is(err, engine.ErrTemplateNotFound),
		errors.Is(err, briefparser.ErrInvalidURL):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrCampaignNotFound):
		return fail(c, fiber.StatusNotFound, "campaign not found")
	case errors.Is(err, services.ErrAuditUnavailable):
		return fail(c, fiber.StatusNotImplemented, err.Error())
	}
	log.Error(op+" failed", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
	return fail(c, fiber.StatusInternalServerError, "internal error")
}
