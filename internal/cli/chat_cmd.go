package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/creative-copilot/backend/internal/cli/formatter"
	"github.com/creative-copilot/backend/internal/responder"
	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat [MESSAGE]",
		Short: "Talk to the copilot; without a message, read lines from stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				fmt.Fprintln(out, formatter.FormatChatReply(responder.Respond(args[0])))
				return nil
			}

			fmt.Fprintln(out, formatter.FormatChatReply(responder.Greeting))
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, formatter.Dim("> "))
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				raw := scanner.Text()
				switch strings.TrimSpace(raw) {
				case "exit", "quit":
					return nil
				case "":
					continue
				}
				fmt.Fprintln(out, formatter.FormatChatReply(responder.Respond(raw)))
			}
		},
	}
}
