package lexicon

import (
	"fmt"
	"strings"

	"github.com/creative-copilot/backend/internal/models"
)

// PhraseKey indexes the goal/tone phrase tables.
type PhraseKey struct {
	Goal models.Goal
	Tone models.Tone
}

type headlineEntry struct {
	format    string
	upperName bool
}

var headlines = map[PhraseKey]headlineEntry{
	{models.GoalAwareness, models.ToneProfessional}: {format: "Introducing %s"},
	{models.GoalAwareness, models.ToneCasual}:       {format: "Meet %s 👋"},
	{models.GoalAwareness, models.TonePlayful}:      {format: "Say hello to %s! 🎉"},
	{models.GoalAwareness, models.ToneBold}:         {format: "%s IS HERE", upperName: true},

	{models.GoalSales, models.ToneProfessional}: {format: "%s - Limited Time Offer"},
	{models.GoalSales, models.ToneCasual}:       {format: "Get %s today!"},
	{models.GoalSales, models.TonePlayful}:      {format: "Don't miss out on %s! 🔥"},
	{models.GoalSales, models.ToneBold}:         {format: "BUY %s NOW", upperName: true},

	{models.GoalEngagement, models.ToneProfessional}: {format: "What do you think of %s?"},
	{models.GoalEngagement, models.ToneCasual}:       {format: "Tell us about your %s experience"},
	{models.GoalEngagement, models.TonePlayful}:      {format: "Who else loves %s? 💕"},
	{models.GoalEngagement, models.ToneBold}:         {format: "%s - YES OR NO?", upperName: true},
}

// DefaultHeadlineFormat is used for every (goal, tone) pair missing from the table.
const DefaultHeadlineFormat = "Amazing %s"

// Headline renders the headline for goal and tone. On a table miss it returns
// the default headline and ok=false.
func Headline(goal models.Goal, tone models.Tone, productName string) (text string, ok bool) {
	e, ok := headlines[PhraseKey{Goal: goal, Tone: tone}]
	if !ok {
		return fmt.Sprintf(DefaultHeadlineFormat, productName), false
	}
	name := productName
	if e.upperName {
		name = strings.ToUpper(name)
	}
	return fmt.Sprintf(e.format, name), true
}

// HeadlineKeys lists every (goal, tone) pair the table covers.
func HeadlineKeys() []PhraseKey {
	keys := make([]PhraseKey, 0, len(headlines))
	for _, g := range models.AllGoals {
		for _, t := range models.AllTones {
			k := PhraseKey{Goal: g, Tone: t}
			if _, ok := headlines[k]; ok {
				keys = append(keys, k)
			}
		}
	}
	return keys
}

var ctas = map[models.Goal][]string{
	models.GoalAwareness:      {"Learn More", "Discover", "Explore", "See Details"},
	models.GoalSales:          {"Shop Now", "Buy Today", "Get Yours", "Order Now", "Claim Offer"},
	models.GoalEngagement:     {"Comment Below", "Share Your Thoughts", "Tag a Friend", "What's Your Take?"},
	models.GoalLeadGeneration: {"Sign Up Free", "Get the Guide", "Book a Demo", "Join the Waitlist"},
}

// DefaultCTAs is the candidate list for goals missing from the CTA table.
var DefaultCTAs = []string{"Learn More"}

// CTAs returns the candidate calls-to-action for goal.
func CTAs(goal models.Goal) (candidates []string, ok bool) {
	c, ok := ctas[goal]
	if !ok || len(c) == 0 {
		return DefaultCTAs, false
	}
	return c, true
}

// Caption hooks. Each is rendered with the product name and target audience.
var hooks = []func(productName, audience string) string{
	func(name, audience string) string {
		return fmt.Sprintf("Here's why %s are obsessed with %s...", audience, name)
	},
	func(name, _ string) string {
		return fmt.Sprintf("The %s everyone's talking about 👇", name)
	},
	func(name, _ string) string {
		return fmt.Sprintf("Why %s is different from everything else:", name)
	},
	func(name, audience string) string {
		return fmt.Sprintf("3 reasons %s is perfect for %s:", name, audience)
	},
}

// HookCount is the number of caption hooks available.
func HookCount() int { return len(hooks) }

// Hook renders hook i. i must be in [0, HookCount()).
func Hook(i int, productName, audience string) string {
	return hooks[i](productName, audience)
}

const (
	// BulletGlyph prefixes every caption bullet.
	BulletGlyph = "✓"
	// CaptionClosing ends every caption.
	CaptionClosing = "Ready to experience the difference?"
)

var goalHashtags = map[models.Goal][]string{
	models.GoalAwareness:  {"#new", "#introducing", "#discover"},
	models.GoalSales:      {"#sale", "#offer", "#limited", "#deal"},
	models.GoalEngagement: {"#community", "#share", "#thoughts"},
}

// GoalHashtags returns the goal-specific hashtags; goals without an entry contribute none.
func GoalHashtags(goal models.Goal) []string {
	return goalHashtags[goal]
}

// FillerHashtags close every hashtag set.
var FillerHashtags = []string{"#instagood", "#amazing"}

// MaxHashtags caps the hashtag set.
const MaxHashtags = 8
