package cli

import (
	"encoding/json"
	"fmt"

	"github.com/mutepass/mutepass-go/internal/analyzer"
	"github.com/mutepass/mutepass-go/internal/model"
	"github.com/mutepass/mutepass-go/internal/service"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Score the strength of a password",
		Long: `Score a password against the five strength rules and print suggestions
for the rules it misses. Without an argument the password is read from
stdin, without echo when stdin is a terminal.`,
		Example: `  mutepass analyze 'Abc12345!'
  echo -n secret | mutepass analyze --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				pw, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password: ")
				if err != nil {
					return err
				}
				password = pw
			}

			resp := service.NewAnalyzerService().Analyze(model.AnalyzeRequest{Password: password})
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(resp)
			}
			printReport(cmd, resp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func printReport(cmd *cobra.Command, resp model.AnalyzeResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Strength: %s (%d/%d)\n", resp.Label, resp.Score, analyzer.MaxScore)
	if len(resp.Suggestions) == 0 {
		return
	}
	fmt.Fprintln(out, "Suggestions:")
	for _, s := range resp.Suggestions {
		fmt.Fprintf(out, "  - %s\n", s)
	}
}
