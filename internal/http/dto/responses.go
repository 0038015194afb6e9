package dto

import (
	"github.com/creative-copilot/backend/internal/briefparser"
	"github.com/creative-copilot/backend/internal/models"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type TokenResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type GenerateResponse struct {
	Seed       uint64                     `json:"seed"`
	Categories []string                   `json:"categories"`
	Artifacts  []models.GeneratedArtifact `json:"artifacts"`
}

type ExtractBriefResponse struct {
	Extraction *briefparser.Extraction `json:"extraction"`
	// Brief is only set when the request named a goal and tone.
	Brief *models.CampaignBrief `json:"brief,omitempty"`
}

type TranscriptResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []models.ChatMessage `json:"messages"`
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
