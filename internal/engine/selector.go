package engine

import "github.com/creative-copilot/backend/internal/models"

// DefaultMaxTemplates bounds a selection when the caller passes maxCount <= 0.
const DefaultMaxTemplates = 4

// goal -> preferred layout
var goalLayouts = map[models.Goal]models.LayoutStyle{
	models.GoalSales:      models.LayoutBold,
	models.GoalAwareness:  models.LayoutMinimal,
	models.GoalEngagement: models.LayoutLifestyle,
}

func templateEligible(goal models.Goal, t models.Template) bool {
	if t.Layout == models.LayoutProductFocus {
		return true
	}
	preferred, ok := goalLayouts[goal]
	return ok && t.Layout == preferred
}

// SelectTemplates keeps the catalog entries eligible for goal, in catalog
// order, up to maxCount.
func SelectTemplates(goal models.Goal, catalog []models.Template, maxCount int) []models.Template {
	if maxCount <= 0 {
		maxCount = DefaultMaxTemplates
	}
	selected := make([]models.Template, 0, min(maxCount, len(catalog)))
	for _, t := range catalog {
		if len(selected) == maxCount {
			break
		}
		if templateEligible(goal, t) {
			selected = append(selected, t)
		}
	}
	return selected
}
