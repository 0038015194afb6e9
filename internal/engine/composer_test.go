package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/creative-copilot/backend/internal/catalog"
	"github.com/creative-copilot/backend/internal/lexicon"
	"github.com/creative-copilot/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence replays fixed draws, each reduced modulo n.
type sequence struct {
	draws []int
	next  int
}

func (s *sequence) IntN(n int) int {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v % n
}

func testTemplate(t *testing.T) *models.Template {
	t.Helper()
	for _, tpl := range catalog.All() {
		if tpl.ID == "product-hero" {
			return &tpl
		}
	}
	t.Fatal("product-hero missing from catalog")
	return nil
}

func baseBrief() models.CampaignBrief {
	return models.CampaignBrief{
		ProductName:        "Glow Kit",
		ProductDescription: "Fast. Reliable. Simple.",
		TargetAudience:     "busy parents",
		Goal:               models.GoalSales,
		Tone:               models.ToneProfessional,
		Platforms:          []string{"Instagram"},
	}
}

func TestCompose_HeadlineTable(t *testing.T) {
	tests := []struct {
		goal     models.Goal
		tone     models.Tone
		expected string
	}{
		{models.GoalAwareness, models.ToneProfessional, "Introducing Glow Kit"},
		{models.GoalAwareness, models.ToneCasual, "Meet Glow Kit 👋"},
		{models.GoalAwareness, models.TonePlayful, "Say hello to Glow Kit! 🎉"},
		{models.GoalAwareness, models.ToneBold, "GLOW KIT IS HERE"},
		{models.GoalSales, models.ToneProfessional, "Glow Kit - Limited Time Offer"},
		{models.GoalSales, models.ToneCasual, "Get Glow Kit today!"},
		{models.GoalSales, models.TonePlayful, "Don't miss out on Glow Kit! 🔥"},
		{models.GoalSales, models.ToneBold, "BUY GLOW KIT NOW"},
		{models.GoalEngagement, models.ToneProfessional, "What do you think of Glow Kit?"},
		{models.GoalEngagement, models.ToneCasual, "Tell us about your Glow Kit experience"},
		{models.GoalEngagement, models.TonePlayful, "Who else loves Glow Kit? 💕"},
		{models.GoalEngagement, models.ToneBold, "GLOW KIT - YES OR NO?"},
	}

	require.Len(t, tests, len(lexicon.HeadlineKeys()))
	for _, tt := range tests {
		t.Run(string(tt.goal)+"/"+string(tt.tone), func(t *testing.T) {
			brief := baseBrief()
			brief.Goal, brief.Tone = tt.goal, tt.tone

			a, err := Compose(brief, testTemplate(t), &sequence{draws: []int{0}})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a.Headline)
		})
	}
}

func TestCompose_HeadlineFallback(t *testing.T) {
	for _, g := range models.AllGoals {
		for _, tone := range models.AllTones {
			if _, ok := lexicon.Headline(g, tone, "x"); ok {
				continue
			}
			brief := baseBrief()
			brief.Goal, brief.Tone = g, tone

			a, err := Compose(brief, testTemplate(t), nil)
			require.NoError(t, err)
			assert.Equal(t, "Amazing Glow Kit", a.Headline, "%s/%s", g, tone)
		}
	}
}

func TestCompose_Subtext(t *testing.T) {
	tests := []struct {
		description string
		tone        models.Tone
		expected    string
	}{
		{"fitness food tech", models.ToneProfessional, "Transform your health today"},
		{"fitness food tech", models.TonePlayful, "Your wellness journey starts here! 💪"},
		{"a recipe app", models.ToneCasual, "Premium quality you can taste"},
		{"a recipe app", models.TonePlayful, "Taste the difference! 😋"},
		{"tech gadget", models.ToneBold, "Technology that works for you"},
		{"tech gadget", models.TonePlayful, "Innovation made simple! 📱"},
		{"fashion only", models.TonePremium, "Quality that speaks for itself"},
		{"", models.TonePlayful, "You're going to love this! ✨"},
	}

	for _, tt := range tests {
		t.Run(tt.description+"/"+string(tt.tone), func(t *testing.T) {
			brief := baseBrief()
			brief.ProductDescription = tt.description
			brief.Tone = tt.tone

			a, err := Compose(brief, testTemplate(t), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a.Subtext)
		})
	}
}

func TestCompose_CTAUsesInjectedSource(t *testing.T) {
	brief := baseBrief()
	sales, _ := lexicon.CTAs(models.GoalSales)

	for i, expected := range sales {
		a, err := Compose(brief, testTemplate(t), &sequence{draws: []int{i, 0}})
		require.NoError(t, err)
		assert.Equal(t, expected, a.CallToAction)
	}
}

func TestCompose_CaptionStructure(t *testing.T) {
	brief := baseBrief()

	a, err := Compose(brief, testTemplate(t), &sequence{draws: []int{0, 3}})
	require.NoError(t, err)

	expected := "3 reasons Glow Kit is perfect for busy parents:\n\n" +
		"✓ Fast\n✓ Reliable\n✓ Simple\n\n" +
		"Ready to experience the difference?"
	assert.Equal(t, expected, a.Caption)

	var bullets int
	for _, line := range strings.Split(a.Caption, "\n") {
		if strings.HasPrefix(line, lexicon.BulletGlyph) {
			bullets++
		}
	}
	assert.Equal(t, 3, bullets)
}

func TestCaptionBullets(t *testing.T) {
	tests := []struct {
		description string
		expected    []string
	}{
		{"Fast. Reliable. Simple.", []string{"✓ Fast", "✓ Reliable", "✓ Simple"}},
		{"One. Two. Three. Four.", []string{"✓ One", "✓ Two", "✓ Three"}},
		{"  No period at all  ", []string{"✓ No period at all"}},
		{"..  . ", nil},
		{"", nil},
		{"Lead.. Gap", []string{"✓ Lead", "✓ Gap"}},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.expected, captionBullets(tt.description))
		})
	}
}

func TestCompose_EmptyDescriptionKeepsCaptionShape(t *testing.T) {
	brief := baseBrief()
	brief.ProductDescription = ""

	a, err := Compose(brief, testTemplate(t), &sequence{draws: []int{0, 2}})
	require.NoError(t, err)
	assert.Equal(t, "Why Glow Kit is different from everything else:\n\n\n\nReady to experience the difference?", a.Caption)
}

func TestCompose_Hashtags(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		description string
		goal        models.Goal
		expected    []string
	}{
		{
			name:        "sales no category",
			productName: "Glow Kit",
			description: "Lasts all day",
			goal:        models.GoalSales,
			expected:    []string{"#glowkit", "#sale", "#offer", "#limited", "#deal", "#instagood", "#amazing"},
		},
		{
			name:        "health and food capped to three industry tags",
			productName: "Fit Meal",
			description: "fitness food",
			goal:        models.GoalSales,
			expected:    []string{"#fitmeal", "#wellness", "#healthylifestyle", "#fitness", "#sale", "#offer", "#limited", "#deal"},
		},
		{
			name:        "duplicate of product tag removed case-insensitively",
			productName: "Fitness",
			description: "fitness tracker",
			goal:        models.GoalAwareness,
			expected:    []string{"#fitness", "#wellness", "#healthylifestyle", "#new", "#introducing", "#discover", "#instagood", "#amazing"},
		},
		{
			name:        "lead generation contributes no goal tags",
			productName: "Acme  CRM",
			description: "business software",
			goal:        models.GoalLeadGeneration,
			expected:    []string{"#acmecrm", "#productivity", "#success", "#professional", "#instagood", "#amazing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brief := baseBrief()
			brief.ProductName = tt.productName
			brief.ProductDescription = tt.description
			brief.Goal = tt.goal

			a, err := Compose(brief, testTemplate(t), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a.Hashtags)
		})
	}
}

func TestCompose_HashtagInvariants(t *testing.T) {
	descriptions := []string{"", "fitness food tech fashion business", "Amazing new app. Instagood vibes.", "health"}
	names := []string{"Amazing", "Insta Good", "X"}

	for _, name := range names {
		for _, d := range descriptions {
			for _, g := range models.AllGoals {
				for _, tone := range models.AllTones {
					brief := models.CampaignBrief{ProductName: name, ProductDescription: d, Goal: g, Tone: tone}
					a, err := Compose(brief, testTemplate(t), nil)
					require.NoError(t, err)

					assert.LessOrEqual(t, len(a.Hashtags), lexicon.MaxHashtags)
					seen := map[string]bool{}
					for _, tag := range a.Hashtags {
						assert.True(t, strings.HasPrefix(tag, "#"), tag)
						key := strings.ToLower(tag)
						assert.False(t, seen[key], "duplicate %q", tag)
						seen[key] = true
					}
				}
			}
		}
	}
}

func TestCompose_StructuralErrors(t *testing.T) {
	_, err := Compose(baseBrief(), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStructural))

	var se *StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "template", se.Field)

	brief := baseBrief()
	brief.ProductName = "   "
	_, err = Compose(brief, testTemplate(t), nil)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "product_name", se.Field)
}

func TestCompose_EmptyFreeTextNeverEmptyFields(t *testing.T) {
	brief := models.CampaignBrief{ProductName: "Solo"}

	a, err := Compose(brief, testTemplate(t), nil)
	require.NoError(t, err)
	assert.Equal(t, "Amazing Solo", a.Headline)
	assert.NotEmpty(t, a.Subtext)
	assert.Equal(t, "Learn More", a.CallToAction)
	assert.NotEmpty(t, a.Caption)
	assert.NotEmpty(t, a.Hashtags)
}
