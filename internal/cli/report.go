// internal/cli/report.go
package gpubench

import (
	"time"

	"github.com/spf13/cobra"
)

type reportOptions struct {
	output string
	json   bool
}

var reportOpts reportOptions

// now is swapped in tests to pin the report timestamp.
var now = time.Now

// reportCmd implements 'report', which generates the narrative summary,
// stores it in the session and prints or writes it.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the project summary report",
	Long: `Generate the project summary: metadata, overview, the vendor comparison
against the baseline vendor, problems and conclusions. The text is stored in the
session for export. --json prints the structured comparison instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, reportOpts)
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportOpts.output, "output", "o", "", "write the report to this file instead of stdout")
	reportCmd.Flags().BoolVar(&reportOpts.json, "json", false, "print the structured comparison as JSON")
	rootCmd.AddCommand(reportCmd)
}
