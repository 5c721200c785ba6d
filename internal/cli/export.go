// internal/cli/export.go
package gpubench

import (
	"github.com/mwiater/gpubench/internal/export"
	"github.com/spf13/cobra"
)

var exportOutput string

// exportCmd implements 'export', which writes the session to an xlsx workbook.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session to an Excel workbook",
	Long: `Write the eight-sheet workbook: project info, environment, PK metrics,
inference, training and accuracy performance, problems and the summary. The
summary is regenerated from the current data.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := loadSession()
		if err != nil {
			return err
		}
		target := exportOutput
		if target == "" {
			target = getConfig().ExportPath
		}
		if target == "" {
			target = export.DefaultFileName(now())
		}
		if err := export.Write(target, p, assemble(p)); err != nil {
			return err
		}
		printSuccess(cmd.OutOrStdout(), "Excel written to %s", target)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "workbook path (default GPU性能测试-YYYYMMDD.xlsx)")
	rootCmd.AddCommand(exportCmd)
}
