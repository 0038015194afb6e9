package handlers

import (
	"github.com/creative-copilot/backend/internal/http/dto"
	"github.com/creative-copilot/backend/internal/lexicon"
	"github.com/creative-copilot/backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type MetaHandler struct {
	templates []models.Template
}

func NewMetaHandler(templates []models.Template) *MetaHandler {
	return &MetaHandler{templates: templates}
}

func (h *MetaHandler) GetGoals(c *fiber.Ctx) error {
	out := make([]dto.Option, 0, len(models.AllGoals))
	for _, g := range models.AllGoals {
		out = append(out, dto.Option{ID: string(g), Label: g.Label()})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: out})
}

func (h *MetaHandler) GetTones(c *fiber.Ctx) error {
	out := make([]dto.Option, 0, len(models.AllTones))
	for _, t := range models.AllTones {
		out = append(out, dto.Option{ID: string(t), Label: t.Label()})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: out})
}

func (h *MetaHandler) GetPlatforms(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: models.AllPlatforms})
}

func (h *MetaHandler) GetTemplates(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: h.templates})
}

func (h *MetaHandler) GetCategories(c *fiber.Ctx) error {
	out := make([]dto.Option, 0, len(lexicon.Categories))
	for _, cat := range lexicon.Categories {
		out = append(out, dto.Option{ID: cat.ID, Label: lexicon.CategoryLabels[cat.ID]})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: out})
}
