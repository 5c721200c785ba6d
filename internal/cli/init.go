// internal/cli/init.go
package gpubench

import "github.com/spf13/cobra"

type initOptions struct {
	name          string
	cycle         string
	vendors       string
	models        []string
	customer      string
	industry      string
	bidStatus     string
	bidShare      string
	bidFailReason string
	owner         string
	gpuCount      string
	dataset       string
	tool          string
	force         bool
}

var initOpts initOptions

// initCmd implements 'init', which starts a new session from project
// metadata, vendor string and model selection.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new benchmark session",
	Long: `Create a session file from project metadata, the vendor string
("H3C（A100）、Acme（V100）") and one --model flag per model ("M1=文本推理,图像识别").
Environment rows are generated for every model, test type and vendor. When
--gpu-count and --dataset are given the performance table is initialised too.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd, initOpts)
	},
}

func init() {
	f := initCmd.Flags()
	f.StringVar(&initOpts.name, "name", "", "project name (required)")
	f.StringVar(&initOpts.cycle, "cycle", "", "test cycle")
	f.StringVar(&initOpts.vendors, "vendors", "", "vendor string, e.g. H3C（A100）、Acme（V100） (required)")
	f.StringArrayVar(&initOpts.models, "model", nil, "model and test types as name=type1,type2 (repeatable)")
	f.StringVar(&initOpts.customer, "customer", "", "customer name")
	f.StringVar(&initOpts.industry, "industry", "", "customer industry")
	f.StringVar(&initOpts.bidStatus, "bid-status", "", "bid status (已中标 / 未中标)")
	f.StringVar(&initOpts.bidShare, "bid-share", "", "bid share when won")
	f.StringVar(&initOpts.bidFailReason, "bid-fail-reason", "", "reason when the bid was lost")
	f.StringVar(&initOpts.owner, "owner", "", "test owner")
	f.StringVar(&initOpts.gpuCount, "gpu-count", "", "GPU count applied to every environment row")
	f.StringVar(&initOpts.dataset, "dataset", "", "dataset applied to every environment row")
	f.StringVar(&initOpts.tool, "tool", "", "test tool applied to every environment row")
	f.BoolVar(&initOpts.force, "force", false, "overwrite an existing session file")

	rootCmd.AddCommand(initCmd)
}
