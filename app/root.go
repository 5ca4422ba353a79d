// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "user-management",
	Short: "user-management is a scoped permission administration service",
	Long: `user-management manages departments, sub-departments, roles, users,
dashboards and tiered permission grants, and resolves effective
permissions through a REST API.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
