package cli

import (
	"fmt"

	"github.com/mansoorceksport/p90xcheck/internal/domain"
	"github.com/spf13/cobra"
)

func newKindsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List every error, warning and info kind with its description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return writeJSON(out, map[string][]domain.KindDescription{
					"errors":   domain.ErrorKinds(),
					"warnings": domain.WarningKinds(),
					"info":     domain.InfoKinds(),
				})
			}

			sections := []struct {
				title string
				kinds []domain.KindDescription
			}{
				{"Errors", domain.ErrorKinds()},
				{"Warnings", domain.WarningKinds()},
				{"Info", domain.InfoKinds()},
			}
			for _, s := range sections {
				fmt.Fprintln(out, s.title)
				for _, k := range s.kinds {
					fmt.Fprintf(out, "  %-32s %s\n", k.Kind, k.Description)
				}
			}
			return nil
		},
	}
}
