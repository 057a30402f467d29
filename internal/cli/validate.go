package cli

import (
	"errors"
	"fmt"

	"github.com/SteveGJones/ai-first-sdlc-practices/internal/checklist"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <checklist.yaml>",
		Short: "Validate a custom checklist file against the checklist schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path := args[0]
			fmt.Fprintf(out, "Checklist validation: %s\n", path)

			cl, err := checklist.LoadFile(path)
			var invalid *checklist.InvalidError
			if errors.As(err, &invalid) {
				fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(invalid.Issues))
				for _, issue := range invalid.Issues {
					fmt.Fprintf(out, "    - %s\n", issue)
				}
				return fmt.Errorf("checklist %s has %d validation issue(s)", path, len(invalid.Issues))
			}
			if err != nil {
				fmt.Fprintf(out, "  [FAIL] %v\n", err)
				return fmt.Errorf("checklist validation failed: %w", err)
			}

			fmt.Fprintf(out, "  [ OK ] Valid checklist %q with %d rule(s)\n", cl.Name, len(cl.Rules))
			return nil
		},
	}
}
