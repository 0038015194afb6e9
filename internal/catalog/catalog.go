// Package catalog is the fixed set of presentation templates.
package catalog

import "github.com/creative-copilot/backend/internal/models"

var templates = []models.Template{
	{
		ID:      "minimal-post",
		Name:    "Minimal Clean",
		Kind:    models.KindPost,
		Layout:  models.LayoutMinimal,
		Styling: models.Styling{Background: "bg-white", Text: "text-gray-900", Accent: "text-primary"},
	},
	{
		ID:      "bold-impact",
		Name:    "Bold Impact",
		Kind:    models.KindPost,
		Layout:  models.LayoutBold,
		Styling: models.Styling{Background: "bg-gradient-primary", Text: "text-white", Accent: "text-yellow-300"},
	},
	{
		ID:      "lifestyle-vibe",
		Name:    "Lifestyle",
		Kind:    models.KindPost,
		Layout:  models.LayoutLifestyle,
		Styling: models.Styling{Background: "bg-gradient-subtle", Text: "text-gray-800", Accent: "text-creative"},
	},
	{
		ID:      "product-hero",
		Name:    "Product Hero",
		Kind:    models.KindPost,
		Layout:  models.LayoutProductFocus,
		Styling: models.Styling{Background: "bg-card", Text: "text-foreground", Accent: "text-primary"},
	},
	{
		ID:      "story-minimal",
		Name:    "Story Minimal",
		Kind:    models.KindStory,
		Layout:  models.LayoutMinimal,
		Styling: models.Styling{Background: "bg-gradient-creative", Text: "text-white", Accent: "text-yellow-200"},
	},
	{
		ID:      "story-bold",
		Name:    "Story Impact",
		Kind:    models.KindStory,
		Layout:  models.LayoutBold,
		Styling: models.Styling{Background: "bg-black", Text: "text-white", Accent: "text-primary"},
	},
	{
		ID:      "testimonial-card",
		Name:    "Testimonial",
		Kind:    models.KindPost,
		Layout:  models.LayoutTestimonial,
		Styling: models.Styling{Background: "bg-muted", Text: "text-foreground", Accent: "text-success"},
	},
}

// All returns the catalog in its canonical order. The slice is a copy.
func All() []models.Template {
	out := make([]models.Template, len(templates))
	copy(out, templates)
	return out
}
