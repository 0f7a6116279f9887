// Package cli wires the autopilot commands together.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. A fresh tree per call keeps flag state out of package globals.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "snake-autopilot",
		Version: "dev",
		Short:   "Path-planning autopilot for grid snake",
		Long: `snake-autopilot steers a snake toward food on a grid using shortest-path
or survival planning, optionally rejecting routes that would leave the snake trapped.

Use "run" to simulate whole sessions and "plan" to ask for a single route.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPlanCmd())
	return rootCmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
