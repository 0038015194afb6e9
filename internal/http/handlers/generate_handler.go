package handlers

import (
	"github.com/creative-copilot/backend/internal/engine"
	"github.com/creative-copilot/backend/internal/http/dto"
	"github.com/creative-copilot/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GenerateHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewGenerateHandler(campaignService *services.CampaignService, log *zap.Logger) *GenerateHandler {
	return &GenerateHandler{campaignService: campaignService, log: log}
}

// Generate runs the engine for a brief without saving the result.
func (h *GenerateHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	brief, err := req.Brief.ToBrief()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := h.campaignService.Generate(c.Context(), brief, generateOptions(req))
	if err != nil {
		return failWith(c, h.log, "generate", err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: dto.GenerateResponse{
		Seed:       res.Seed,
		Categories: engine.Classify(brief.ProductDescription).Ordered(),
		Artifacts:  res.Artifacts,
	}})
}

func generateOptions(req dto.GenerateRequest) engine.Options {
	return engine.Options{
		Seed:         req.Seed,
		MaxTemplates: req.MaxTemplates,
		TemplateIDs:  req.TemplateIDs,
	}
}
