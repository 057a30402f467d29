package cli

import (
	"fmt"

	"github.com/SteveGJones/ai-first-sdlc-practices/internal/checklist"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in checklist presets and their checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, name := range checklist.PresetNames() {
				cl, err := checklist.Preset(name)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s: %s\n", cl.Name, cl.Description)
				for n, r := range cl.Rules {
					fmt.Fprintf(out, "  %d. %s (%s)\n", n+1, r.Name, r.Kind)
				}
			}
			return nil
		},
	}
}
