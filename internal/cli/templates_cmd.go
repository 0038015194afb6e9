package cli

import (
	"fmt"

	"github.com/creative-copilot/backend/internal/cli/formatter"
	"github.com/creative-copilot/backend/internal/engine"
	"github.com/creative-copilot/backend/internal/models"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(app *App) *cobra.Command {
	var goal string
	var limit int

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List presentation templates",
		Long:  "List the template catalog. With --goal, show only what that goal would populate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := app.Templates
			if goal != "" {
				g, ok := models.ParseGoal(goal)
				if !ok {
					return fmt.Errorf("unknown goal %q", goal)
				}
				templates = engine.SelectTemplates(g, templates, limit)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTemplateList(templates))
			return nil
		},
	}

	cmd.Flags().StringVarP(&goal, "goal", "g", "", "filter to the templates selected for a goal")
	cmd.Flags().IntVarP(&limit, "max", "m", engine.DefaultMaxTemplates, "selection limit used with --goal")
	return cmd
}
