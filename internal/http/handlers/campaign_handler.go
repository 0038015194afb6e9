package handlers

import (
	"strconv"

	"github.com/creative-copilot/backend/internal/http/dto"
	"github.com/creative-copilot/backend/internal/middleware"
	"github.com/creative-copilot/backend/internal/models"
	"github.com/creative-copilot/backend/internal/repositories"
	"github.com/creative-copilot/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
	log             *zap.Logger
}

func NewCampaignHandler(campaignService *services.CampaignService, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, log: log}
}

func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	brief, err := req.Brief.ToBrief()
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}

	userID := middleware.GetUserID(c)
	campaign, err := h.campaignService.Create(c.Context(), userID, brief, generateOptions(req))
	if err != nil {
		return failWith(c, h.log, "create campaign", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid campaign id")
	}

	campaign, err := h.campaignService.Get(c.Context(), id, middleware.GetUserID(c))
	if err != nil {
		return failWith(c, h.log, "get campaign", err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) ListCampaigns(c *fiber.Ctx) error {
	filter := repositories.CampaignFilter{
		Limit:  20,
		Offset: 0,
	}

	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filter.Offset = n
		}
	}
	if v := c.Query("goal"); v != "" {
		goal, ok := models.ParseGoal(v)
		if !ok {
			return fail(c, fiber.StatusBadRequest, "unknown goal "+strconv.Quote(v))
		}
		filter.Goal = &goal
	}

	campaigns, err := h.campaignService.List(c.Context(), middleware.GetUserID(c), filter)
	if err != nil {
		return failWith(c, h.log, "list campaigns", err)
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaigns})
}

// RegenerateCampaign re-rolls the copy of a saved campaign.
func (h *CampaignHandler) RegenerateCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid campaign id")
	}

	var req dto.RegenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fiber.StatusBadRequest, "invalid request body")
		}
	}

	campaign, err := h.campaignService.Regenerate(c.Context(), id, middleware.GetUserID(c), req.Seed)
	if err != nil {
		return failWith(c, h.log, "regenerate campaign", err)
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: campaign})
}

func (h *CampaignHandler) DeleteCampaign(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid campaign id")
	}

	if err := h.campaignService.Delete(c.Context(), id, middleware.GetUserID(c)); err != nil {
		return failWith(c, h.log, "delete campaign", err)
	}

	return c.JSON(dto.SuccessResponse{OK: true})
}

func (h *CampaignHandler) GetCampaignAudit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid campaign id")
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	logs, err := h.campaignService.AuditTrail(c.Context(), id, middleware.GetUserID(c), limit, offset)
	if err != nil {
		return failWith(c, h.log, "campaign audit", err)
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	return c.JSON(dto.SuccessResponse{OK: true, Data: logs})
}
