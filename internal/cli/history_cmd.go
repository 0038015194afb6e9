package cli

import (
	"fmt"

	"github.com/creative-copilot/backend/internal/cli/formatter"
	"github.com/creative-copilot/backend/internal/models"
	"github.com/creative-copilot/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse campaigns saved with generate --save",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryRegenerateCmd(app),
		newHistoryDeleteCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var goal string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved campaigns, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := repositories.CampaignFilter{Limit: limit, Offset: offset}
			if goal != "" {
				g, ok := models.ParseGoal(goal)
				if !ok {
					return fmt.Errorf("unknown goal %q", goal)
				}
				f.Goal = &g
			}

			campaigns, err := app.Campaigns.List(cmd.Context(), localUser, f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(campaigns) == 0 {
				fmt.Fprintln(out, "No saved campaigns.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatCampaignList(campaigns, app.Now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&goal, "goal", "g", "", "only campaigns with this goal")
	cmd.Flags().IntVar(&limit, "limit", 20, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a saved campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign id %q", args[0])
			}
			c, err := app.Campaigns.Get(cmd.Context(), id, localUser)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), c)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCampaign(c))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newHistoryRegenerateCmd(app *App) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "regenerate ID",
		Short: "Generate new variations for a saved campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign id %q", args[0])
			}
			var pinned *uint64
			if cmd.Flags().Changed("seed") {
				pinned = &seed
			}
			c, err := app.Campaigns.Regenerate(cmd.Context(), id, localUser, pinned)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCampaign(c))
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the new variations")
	return cmd
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid campaign id %q", args[0])
			}
			if err := app.Campaigns.Delete(cmd.Context(), id, localUser); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted "+id.String())
			return nil
		},
	}
}
