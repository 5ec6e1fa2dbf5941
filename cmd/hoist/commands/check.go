package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate resolved packages against the host environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, err := cmd.Flags().GetString("snapshot")
			if err != nil {
				return err
			}
			return c.app.Check(cmd.Context(), snapshot)
		},
	}
}
