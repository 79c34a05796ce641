package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/buildargs/internal/app"
)

func (c *CLI) newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get NAME [-- build arguments...]",
		Short: "Print an argument converted to a type",
		Args:  exactPositional(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, _ := cmd.Flags().GetString("type")

			opts := app.GetOptions{
				Name: positional(cmd, args)[0],
				Type: typeName,
			}
			if cmd.Flags().Changed("default") {
				def, _ := cmd.Flags().GetString("default")
				opts.Default = &def
			}

			value, err := c.app.Get(cmd.Context(), c.request(cmd, args), opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	cmd.Flags().StringP("type", "t", "string", "Target type: "+strings.Join(app.Types(), ", "))
	cmd.Flags().StringP("default", "d", "", "Value printed as is when the argument is absent")
	return cmd
}
