package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Goal string

// Campaign goals
const (
	GoalAwareness      Goal = "awareness"
	GoalSales          Goal = "sales"
	GoalEngagement     Goal = "engagement"
	GoalLeadGeneration Goal = "lead_generation"
)

var AllGoals = []Goal{GoalAwareness, GoalSales, GoalEngagement, GoalLeadGeneration}

var goalLabels = map[Goal]string{
	GoalAwareness:      "Awareness",
	GoalSales:          "Sales",
	GoalEngagement:     "Engagement",
	GoalLeadGeneration: "Lead Generation",
}

func (g Goal) Label() string {
	if l, ok := goalLabels[g]; ok {
		return l
	}
	return string(g)
}

type Tone string

// Campaign tones
const (
	ToneProfessional  Tone = "professional"
	TonePlayful       Tone = "playful"
	ToneBold          Tone = "bold"
	TonePremium       Tone = "premium"
	ToneCasual        Tone = "casual"
	ToneInspirational Tone = "inspirational"
)

var AllTones = []Tone{ToneProfessional, TonePlayful, ToneBold, TonePremium, ToneCasual, ToneInspirational}

func (t Tone) Label() string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Platforms offered in the brief form. Carried through for display only.
var AllPlatforms = []string{"Instagram", "LinkedIn", "TikTok", "Facebook", "Twitter", "YouTube"}

// ParseGoal accepts both identifiers and display labels ("Lead Generation").
func ParseGoal(s string) (Goal, bool) {
	g := Goal(normalizeEnum(s))
	for _, known := range AllGoals {
		if g == known {
			return g, true
		}
	}
	return "", false
}

func ParseTone(s string) (Tone, bool) {
	t := Tone(normalizeEnum(s))
	for _, known := range AllTones {
		if t == known {
			return t, true
		}
	}
	return "", false
}

func normalizeEnum(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.Join(strings.Fields(s), "_")
}

// CampaignBrief is the structured input the generator works from.
type CampaignBrief struct {
	ProductName        string   `json:"product_name" yaml:"product_name"`
	ProductDescription string   `json:"product_description" yaml:"product_description"`
	TargetAudience     string   `json:"target_audience" yaml:"target_audience"`
	Goal               Goal     `json:"goal" yaml:"goal"`
	Tone               Tone     `json:"tone" yaml:"tone"`
	Platforms          []string `json:"platforms" yaml:"platforms"`
}

// Campaign is a saved generation run.
type Campaign struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	Brief     CampaignBrief       `json:"brief"`
	Seed      uint64              `json:"seed"`
	Artifacts []GeneratedArtifact `json:"artifacts"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
