// Package cli implements the mutepass command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set by main.go
var Version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mutepass",
		Short: "Generate random passwords and check password strength",
		Long: `mutepass generates random passwords from selectable character classes
and scores passwords against a five-rule checklist:
  - at least 8 characters
  - an uppercase letter
  - a lowercase letter
  - a digit
  - a special character

Generated passwords use a fast non-cryptographic random source and are not
meant for high-security secrets.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newGenerateCmd(), newAnalyzeCmd(), newServeCmd())
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	Version = version

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
