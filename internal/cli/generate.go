package cli

import (
	"errors"
	"fmt"

	"github.com/mutepass/mutepass-go/internal/generator"
	"github.com/mutepass/mutepass-go/internal/model"
	"github.com/mutepass/mutepass-go/internal/service"
	"github.com/spf13/cobra"
)

var errEmptySelection = errors.New(generator.EmptySelectionMessage)

type generateFlags struct {
	length    int
	count     int
	noUpper   bool
	noLower   bool
	noDigits  bool
	noSpecial bool
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: fmt.Sprintf(`Generate random passwords. Length defaults to %d and is clamped to [%d, %d].
All four character classes are enabled unless switched off.`,
			service.DefaultLength, service.MinLength, service.MaxLength),
		Example: `  mutepass generate
  mutepass generate -l 20 --no-special
  mutepass generate -n 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	cmd.Flags().IntVarP(&f.length, "length", "l", service.DefaultLength, "password length")
	cmd.Flags().IntVarP(&f.count, "count", "n", 1, "number of passwords to print")
	cmd.Flags().BoolVar(&f.noUpper, "no-upper", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&f.noLower, "no-lower", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&f.noDigits, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&f.noSpecial, "no-special", false, "exclude special characters")

	return cmd
}

func runGenerate(cmd *cobra.Command, f generateFlags) error {
	if f.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", f.count)
	}

	upper, lower, digits, special := !f.noUpper, !f.noLower, !f.noDigits, !f.noSpecial
	req := model.GenerateRequest{
		Length:    f.length,
		Uppercase: &upper,
		Lowercase: &lower,
		Numbers:   &digits,
		Symbols:   &special,
	}

	svc := service.NewGeneratorService()
	out := cmd.OutOrStdout()
	for i := 0; i < f.count; i++ {
		resp, err := svc.Generate(req)
		if errors.Is(err, generator.ErrNoCharacterTypes) {
			return errEmptySelection
		}
		if err != nil {
			return fmt.Errorf("generating password: %w", err)
		}
		fmt.Fprintln(out, resp.Password)
	}
	return nil
}
