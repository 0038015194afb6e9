package cli

import (
	"fmt"

	"github.com/creative-copilot/backend/internal/auth"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTokenCmd(app *App) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an API bearer token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := uuid.New()
			if user != "" {
				id, err := uuid.Parse(user)
				if err != nil {
					return fmt.Errorf("invalid user id %q", user)
				}
				userID = id
			}

			token, err := auth.GenerateJWT(app.JWTSecret, userID, app.JWTExpiration)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user id to embed (default: a new id)")
	return cmd
}
