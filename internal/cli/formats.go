package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjaus/xlgrid"
)

// NewFormatsCommand creates the formats command.
func NewFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range xlgrid.Formats() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), xlgrid.GoTemplate("<template>"))
			return err
		},
	}
}
