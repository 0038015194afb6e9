package handlers

import (
	"context"
	"errors"

	"github.com/creative-copilot/backend/internal/briefparser"
	"github.com/creative-copilot/backend/internal/http/dto"
	"github.com/creative-copilot/backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BriefExtractor interface {
	FetchAndExtract(ctx context.Context, url string) (*briefparser.Extraction, error)
}

type BriefHandler struct {
	extractor BriefExtractor
	log       *zap.Logger
}

func NewBriefHandler(extractor BriefExtractor, log *zap.Logger) *BriefHandler {
	return &BriefHandler{extractor: extractor, log: log}
}

func (h *BriefHandler) Extract(c *fiber.Ctx) error {
	var req dto.ExtractBriefRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	if req.URL == "" {
		return fail(c, fiber.StatusBadRequest, "url is required")
	}

	var (
		goal      models.Goal
		tone      models.Tone
		wantBrief = req.Goal != "" || req.Tone != ""
	)
	if wantBrief {
		var ok bool
		if goal, ok = models.ParseGoal(req.Goal); !ok {
			return fail(c, fiber.StatusBadRequest, "unknown goal")
		}
		if tone, ok = models.ParseTone(req.Tone); !ok {
			return fail(c, fiber.StatusBadRequest, "unknown tone")
		}
	}

	ex, err := h.extractor.FetchAndExtract(c.Context(), req.URL)
	if err != nil {
		if errors.Is(err, briefparser.ErrInvalidURL) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		h.log.Warn("brief extraction failed", zap.String("url", req.URL), zap.Error(err))
		return fail(c, fiber.StatusBadGateway, "could not read the page")
	}

	resp := dto.ExtractBriefResponse{Extraction: ex}
	if wantBrief {
		brief := ex.Brief(goal, tone)
		resp.Brief = &brief
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: resp})
}
