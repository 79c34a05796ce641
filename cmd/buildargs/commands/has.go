package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/buildargs/internal/core/domain"
)

func (c *CLI) newHasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has NAME [-- build arguments...]",
		Short: "Report whether an argument was supplied (exit 1 when not)",
		Args:  exactPositional(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := positional(cmd, args)[0]
			ok, err := c.app.Has(cmd.Context(), c.request(cmd, args), name)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				return domain.ErrArgumentFalse
			}
			return nil
		},
	}
}
