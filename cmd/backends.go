package cmd

import (
	"fmt"

	"github.com/Digni/user-idle/internal/idle"
	"github.com/spf13/cobra"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the idle backends built for this platform",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		def := idle.DefaultBackend()
		for _, name := range idle.Backends() {
			if name == def {
				fmt.Fprintf(out, "%s (default)\n", name)
				continue
			}
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
