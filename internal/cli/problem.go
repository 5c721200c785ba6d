// internal/cli/problem.go
package gpubench

import "github.com/spf13/cobra"

// problemCmd represents the 'problem' command group.
var problemCmd = &cobra.Command{
	Use:   "problem",
	Short: "Group commands for the problem list",
}

type problemOptions struct {
	category    string
	description string
	person      string
	solution    string
}

var problemAddOpts problemOptions

var problemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a problem met during the project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProblemAdd(cmd, problemAddOpts)
	},
}

var problemRemoveCmd = &cobra.Command{
	Use:   "remove <problem-id>",
	Short: "Remove a problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProblemRemove(cmd, args[0])
	},
}

func init() {
	f := problemAddCmd.Flags()
	f.StringVar(&problemAddOpts.category, "category", "", "技术问题 or 项目问题")
	f.StringVar(&problemAddOpts.description, "description", "", "what happened")
	f.StringVar(&problemAddOpts.person, "person", "", "owner of the problem")
	f.StringVar(&problemAddOpts.solution, "solution", "", "solution, if known")

	problemCmd.AddCommand(problemAddCmd, problemRemoveCmd)
	rootCmd.AddCommand(problemCmd)
}
