// internal/cli/set.go
package gpubench

import "github.com/spf13/cobra"

// setCmd represents the 'set' command group for editing the session.
var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Group commands for editing session values",
	Long:  `The 'set' command groups subcommands that change metadata, environment rows, measured values and PK selections.`,
}

type setEnvOptions struct {
	gpu      string
	gpuCount string
	dataset  string
	tool     string
}

var setEnvOpts setEnvOptions

var setEnvCmd = &cobra.Command{
	Use:   "env <env-id|all>",
	Short: "Set GPU, GPU count, dataset or tool on environment rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetEnv(cmd, args[0], setEnvOpts)
	},
}

var setValueCmd = &cobra.Command{
	Use:   "value <perf-id> <field> <value>",
	Short: "Record a measured value on a performance row",
	Long:  `Record a measured value. An empty value clears the field; it is kept blank, not zero.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetValue(cmd, args[0], args[1], args[2])
	},
}

var setPKCmd = &cobra.Command{
	Use:   "pk <model> <test-type> <metric[,metric...]>",
	Short: "Select the PK metrics for a model and test type",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetPK(cmd, args[0], args[1], args[2])
	},
}

type setInfoOptions struct {
	cycle         string
	customer      string
	industry      string
	bidStatus     string
	bidShare      string
	bidFailReason string
	owner         string
}

var setInfoOpts setInfoOptions

var setInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Update project, customer and bid metadata",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetInfo(cmd, setInfoOpts)
	},
}

func init() {
	setEnvCmd.Flags().StringVar(&setEnvOpts.gpu, "gpu", "", "GPU model")
	setEnvCmd.Flags().StringVar(&setEnvOpts.gpuCount, "gpu-count", "", "number of GPUs")
	setEnvCmd.Flags().StringVar(&setEnvOpts.dataset, "dataset", "", "dataset name")
	setEnvCmd.Flags().StringVar(&setEnvOpts.tool, "tool", "", "test tool")

	setInfoCmd.Flags().StringVar(&setInfoOpts.cycle, "cycle", "", "test cycle")
	setInfoCmd.Flags().StringVar(&setInfoOpts.customer, "customer", "", "customer name")
	setInfoCmd.Flags().StringVar(&setInfoOpts.industry, "industry", "", "customer industry")
	setInfoCmd.Flags().StringVar(&setInfoOpts.bidStatus, "bid-status", "", "bid status (已中标 / 未中标)")
	setInfoCmd.Flags().StringVar(&setInfoOpts.bidShare, "bid-share", "", "bid share when won")
	setInfoCmd.Flags().StringVar(&setInfoOpts.bidFailReason, "bid-fail-reason", "", "reason when the bid was lost")
	setInfoCmd.Flags().StringVar(&setInfoOpts.owner, "owner", "", "test owner")

	setCmd.AddCommand(setEnvCmd, setValueCmd, setPKCmd, setInfoCmd)
	rootCmd.AddCommand(setCmd)
}
