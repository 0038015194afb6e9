package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/creative-copilot/backend/internal/models"
)

// FormatArtifact renders one generated artifact as a card.
func FormatArtifact(a models.GeneratedArtifact) string {
	accent := LayoutColor(a.Template.Layout)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s %s\n\n",
		Bold(a.Template.Name),
		Badge(string(a.Template.Kind), ColorDim),
		Badge(string(a.Template.Layout), accent),
	)
	b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).Render(a.Headline) + "\n")
	b.WriteString(Dim(a.Subtext) + "\n\n")
	b.WriteString("→ " + Bold(a.CallToAction) + "\n\n")
	b.WriteString(a.Caption + "\n\n")
	b.WriteString(StyleHashtag.Render(a.HashtagLine()))

	return RenderBox("", b.String(), accent)
}

// FormatArtifacts renders a whole batch with the seed needed to reproduce it.
func FormatArtifacts(seed uint64, artifacts []models.GeneratedArtifact) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%d artifacts", len(artifacts))) + "\n")
	b.WriteString(Dim(fmt.Sprintf("seed %d", seed)) + "\n\n")
	for _, a := range artifacts {
		b.WriteString(FormatArtifact(a) + "\n")
	}
	return b.String()
}

func FormatTemplateList(templates []models.Template) string {
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		rows = append(rows, []string{
			t.ID,
			Bold(t.Name),
			string(t.Kind),
			lipgloss.NewStyle().Foreground(LayoutColor(t.Layout)).Render(string(t.Layout)),
		})
	}
	return RenderTable([]string{"ID", "NAME", "KIND", "LAYOUT"}, rows)
}

func FormatCampaignList(campaigns []models.Campaign, now time.Time) string {
	rows := make([][]string, 0, len(campaigns))
	for _, c := range campaigns {
		rows = append(rows, []string{
			c.ID.String(),
			Bold(c.Brief.ProductName),
			c.Brief.Goal.Label(),
			c.Brief.Tone.Label(),
			fmt.Sprintf("%d", len(c.Artifacts)),
			Dim(Ago(c.CreatedAt, now)),
		})
	}
	return RenderTable([]string{"ID", "PRODUCT", "GOAL", "TONE", "ARTIFACTS", "CREATED"}, rows)
}

func FormatCampaign(c *models.Campaign) string {
	var b strings.Builder
	b.WriteString(Header(c.Brief.ProductName) + "\n")
	fmt.Fprintf(&b, "  %s  %s\n", Dim("ID      "), c.ID)
	fmt.Fprintf(&b, "  %s  %s\n", Dim("GOAL    "), c.Brief.Goal.Label())
	fmt.Fprintf(&b, "  %s  %s\n", Dim("TONE    "), c.Brief.Tone.Label())
	if c.Brief.TargetAudience != "" {
		fmt.Fprintf(&b, "  %s  %s\n", Dim("AUDIENCE"), c.Brief.TargetAudience)
	}
	if len(c.Brief.Platforms) > 0 {
		fmt.Fprintf(&b, "  %s  %s\n", Dim("PLATFORM"), strings.Join(c.Brief.Platforms, ", "))
	}
	b.WriteString("\n")
	b.WriteString(FormatArtifacts(c.Seed, c.Artifacts))
	return b.String()
}

// FormatChatReply prefixes the agent's text with its role.
func FormatChatReply(text string) string {
	return StyleAgent.Render("copilot") + "  " + text
}

// Ago is a coarse "time since" used in listings.
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
