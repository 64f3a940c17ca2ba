package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRootsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roots <chunk>",
		Short: "List the root modules of a chunk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := c.app.Roots(cmd.Context(), configPath(cmd), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range roots {
				_, _ = fmt.Fprintln(out, r)
			}
			return nil
		},
	}
}
