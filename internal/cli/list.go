// internal/cli/list.go
package gpubench

import "github.com/spf13/cobra"

// listCmd represents the 'list' command group.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Group commands for listing session rows and commands",
}

var listEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "List environment rows with their IDs",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runListRows(cmd, rowsEnv) },
}

var listPerfCmd = &cobra.Command{
	Use:   "perf",
	Short: "List performance rows with their IDs and values",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runListRows(cmd, rowsPerf) },
}

var listPKCmd = &cobra.Command{
	Use:   "pk",
	Short: "List PK selections and their options",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runListRows(cmd, rowsPK) },
}

var listProblemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List recorded problems",
	Args:  cobra.NoArgs,
	RunE:  func(cmd *cobra.Command, args []string) error { return runListRows(cmd, rowsProblems) },
}

func init() {
	listCmd.AddCommand(listEnvCmd, listPerfCmd, listPKCmd, listProblemsCmd)
	rootCmd.AddCommand(listCmd)
}
