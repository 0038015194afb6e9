package dto

import (
	"fmt"

	"github.com/creative-copilot/backend/internal/models"
)

type BriefRequest struct {
	ProductName        string   `json:"product_name"`
	ProductDescription string   `json:"product_description"`
	TargetAudience     string   `json:"target_audience"`
	Goal               string   `json:"goal"`
	Tone               string   `json:"tone"`
	Platforms          []string `json:"platforms,omitempty"`
}

// ToBrief checks the enum fields. Free text is passed through as is.
func (r BriefRequest) ToBrief() (models.CampaignBrief, error) {
	goal, ok := models.ParseGoal(r.Goal)
	if !ok {
		return models.CampaignBrief{}, fmt.Errorf("unknown goal %q", r.Goal)
	}
	tone, ok := models.ParseTone(r.Tone)
	if !ok {
		return models.CampaignBrief{}, fmt.Errorf("unknown tone %q", r.Tone)
	}
	return models.CampaignBrief{
		ProductName:        r.ProductName,
		ProductDescription: r.ProductDescription,
		TargetAudience:     r.TargetAudience,
		Goal:               goal,
		Tone:               tone,
		Platforms:          r.Platforms,
	}, nil
}

type GenerateRequest struct {
	Brief        BriefRequest `json:"brief"`
	Seed         *uint64      `json:"seed,omitempty"`
	MaxTemplates int          `json:"max_templates,omitempty"`
	TemplateIDs  []string     `json:"template_ids,omitempty"`
}

type RegenerateRequest struct {
	Seed *uint64 `json:"seed,omitempty"`
}

type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Content   string `json:"content"`
}

type ExtractBriefRequest struct {
	URL  string `json:"url"`
	Goal string `json:"goal,omitempty"`
	Tone string `json:"tone,omitempty"`
}
