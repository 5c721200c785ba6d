// internal/cli/perf.go
package gpubench

import "github.com/spf13/cobra"

// perfCmd represents the 'perf' command group for the performance table.
var perfCmd = &cobra.Command{
	Use:   "perf",
	Short: "Group commands for the performance table",
}

var perfInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Build performance rows and PK selections from the environment",
	Long: `Check that every environment row has a GPU count and dataset, then rebuild
the performance rows (one per environment row), the PK table (one row per model
and test type) and reset the problem list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPerfInit(cmd)
	},
}

type perfAddOptions struct {
	model    string
	testType string
	vendor   string
	gpu      string
	dataset  string
	gpuCount string
}

var perfAddOpts perfAddOptions

var perfAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a performance row for another run",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPerfAdd(cmd, perfAddOpts)
	},
}

var perfRemoveCmd = &cobra.Command{
	Use:   "remove <perf-id>",
	Short: "Remove a performance row",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPerfRemove(cmd, args[0])
	},
}

func init() {
	f := perfAddCmd.Flags()
	f.StringVar(&perfAddOpts.model, "model", "", "model name (required)")
	f.StringVar(&perfAddOpts.testType, "test-type", "", "test type (required)")
	f.StringVar(&perfAddOpts.vendor, "vendor", "", "vendor name (required)")
	f.StringVar(&perfAddOpts.gpu, "gpu", "", "GPU model")
	f.StringVar(&perfAddOpts.dataset, "dataset", "", "dataset")
	f.StringVar(&perfAddOpts.gpuCount, "gpu-count", "", "GPU count")
	_ = perfAddCmd.MarkFlagRequired("model")
	_ = perfAddCmd.MarkFlagRequired("test-type")
	_ = perfAddCmd.MarkFlagRequired("vendor")

	perfCmd.AddCommand(perfInitCmd, perfAddCmd, perfRemoveCmd)
	rootCmd.AddCommand(perfCmd)
}
