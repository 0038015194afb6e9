// Package cli is the copilot command line: generate copy, chat, and browse
// locally saved campaigns.
package cli

import (
	"time"

	"github.com/creative-copilot/backend/internal/models"
	"github.com/creative-copilot/backend/internal/services"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// localUser owns every campaign saved from the command line.
var localUser = uuid.Nil

// App holds what the commands need. Campaigns is backed by the local sqlite store.
type App struct {
	Campaigns     *services.CampaignService
	Templates     []models.Template
	JWTSecret     string
	JWTExpiration time.Duration
	Now           func() time.Time
}

func NewRootCmd(app *App) *cobra.Command {
	if app.Now == nil {
		app.Now = time.Now
	}

	root := &cobra.Command{
		Use:           "copilot",
		Short:         "Rule-based campaign copy generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newChatCmd(),
		newTemplatesCmd(app),
		newHistoryCmd(app),
		newTokenCmd(app),
	)

	return root
}
