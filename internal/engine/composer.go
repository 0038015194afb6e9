package engine

import (
	"math/rand/v2"
	"strings"

	"github.com/creative-copilot/backend/internal/lexicon"
	"github.com/creative-copilot/backend/internal/models"
)

const (
	maxCaptionBullets   = 3
	maxIndustryHashtags = 3
)

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// ValidateBrief checks the fields composition cannot run without.
func ValidateBrief(brief models.CampaignBrief) error {
	if strings.TrimSpace(brief.ProductName) == "" {
		return &StructuralError{Field: "product_name", Reason: "must not be empty"}
	}
	return nil
}

// Compose fills template with copy derived from brief. A nil rng falls back
// to the process-wide generator.
func Compose(brief models.CampaignBrief, template *models.Template, rng RandomSource) (models.GeneratedArtifact, error) {
	if template == nil {
		return models.GeneratedArtifact{}, &StructuralError{Field: "template", Reason: "no template selected"}
	}
	if err := ValidateBrief(brief); err != nil {
		return models.GeneratedArtifact{}, err
	}
	if rng == nil {
		rng = globalSource{}
	}

	categories := Classify(brief.ProductDescription)
	headline, _ := lexicon.Headline(brief.Goal, brief.Tone, brief.ProductName)
	candidates, _ := lexicon.CTAs(brief.Goal)
	// draw order: CTA, then caption hook
	cta := pick(rng, candidates)
	caption := composeCaption(brief, rng)

	return models.GeneratedArtifact{
		Template:     *template,
		Headline:     headline,
		Subtext:      composeSubtext(categories, brief.Tone),
		CallToAction: cta,
		Caption:      caption,
		Hashtags:     composeHashtags(brief.ProductName, categories, brief.Goal),
	}, nil
}

func composeSubtext(categories CategorySet, tone models.Tone) string {
	playful := tone == models.TonePlayful
	for _, c := range lexicon.SubtextCategories() {
		if categories.Has(c) {
			text, _ := lexicon.Subtext(c, playful)
			return text
		}
	}
	text, _ := lexicon.Subtext("", playful)
	return text
}

func composeCaption(brief models.CampaignBrief, rng RandomSource) string {
	hook := lexicon.Hook(rng.IntN(lexicon.HookCount()), brief.ProductName, brief.TargetAudience)

	var b strings.Builder
	b.WriteString(hook)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(captionBullets(brief.ProductDescription), "\n"))
	b.WriteString("\n\n")
	b.WriteString(lexicon.CaptionClosing)
	return b.String()
}

// captionBullets turns the first sentences of description into checkmark bullets.
func captionBullets(description string) []string {
	var bullets []string
	for _, frag := range strings.Split(description, ".") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		bullets = append(bullets, lexicon.BulletGlyph+" "+frag)
		if len(bullets) == maxCaptionBullets {
			break
		}
	}
	return bullets
}

func productHashtag(productName string) string {
	return "#" + strings.ToLower(strings.Join(strings.Fields(productName), ""))
}

func composeHashtags(productName string, categories CategorySet, goal models.Goal) []string {
	tags := []string{productHashtag(productName)}

	var industry []string
	for _, c := range categories.Ordered() {
		industry = append(industry, lexicon.CategoryHashtags(c)...)
	}
	if len(industry) > maxIndustryHashtags {
		industry = industry[:maxIndustryHashtags]
	}
	tags = append(tags, industry...)
	tags = append(tags, lexicon.GoalHashtags(goal)...)
	tags = append(tags, lexicon.FillerHashtags...)

	return dedupeHashtags(tags, lexicon.MaxHashtags)
}

// dedupeHashtags drops case-insensitive repeats (first one wins), then caps the length.
func dedupeHashtags(tags []string, limit int) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, limit)
	for _, tag := range tags {
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
		if len(out) == limit {
			break
		}
	}
	return out
}
