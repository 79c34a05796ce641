package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [-- build arguments...]",
		Short: "Print a stable hash of the effective arguments",
		Args:  exactPositional(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := c.app.Fingerprint(cmd.Context(), c.request(cmd, args))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), fp)
			return nil
		},
	}
}
