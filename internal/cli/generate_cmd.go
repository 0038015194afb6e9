package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/creative-copilot/backend/internal/cli/formatter"
	"github.com/creative-copilot/backend/internal/engine"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		brief     briefFlags
		seed      uint64
		limit     int
		templates []string
		save      bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate campaign copy for a product",
		Example: `  copilot generate -n FitPro -d "Smart fitness tracker. Waterproof." -g sales -t bold
  copilot generate --brief fitpro.yaml --seed 42 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := brief.resolve(cmd)
			if err != nil {
				return err
			}

			opts := engine.Options{MaxTemplates: limit, TemplateIDs: templates}
			if cmd.Flags().Changed("seed") {
				opts.Seed = &seed
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if save {
				c, err := app.Campaigns.Create(ctx, localUser, b, opts)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(out, c)
				}
				fmt.Fprint(out, formatter.FormatCampaign(c))
				fmt.Fprintln(out, formatter.Dim("saved as "+c.ID.String()))
				return nil
			}

			res, err := app.Campaigns.Generate(ctx, b, opts)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(out, res)
			}
			fmt.Fprint(out, formatter.FormatArtifacts(res.Seed, res.Artifacts))
			return nil
		},
	}

	brief.register(cmd)
	fl := cmd.Flags()
	fl.Uint64Var(&seed, "seed", 0, "reproduce an earlier run")
	fl.IntVarP(&limit, "max", "m", 0, "maximum number of templates (default from MAX_TEMPLATES)")
	fl.StringSliceVar(&templates, "template", nil, "populate these template ids instead of selecting by goal")
	fl.BoolVar(&save, "save", false, "save the campaign to local history")
	fl.BoolVar(&asJSON, "json", false, "print JSON instead of cards")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
