package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [-- build arguments...]",
		Short: "List all arguments with their effective values",
		Args:  exactPositional(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.List(cmd.Context(), c.request(cmd, args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("output-json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(out, "%s=%s\n", e.Name, e.Value)
			}
			return nil
		},
	}
	cmd.Flags().Bool("output-json", false, "Print the arguments as a JSON array")
	return cmd
}
