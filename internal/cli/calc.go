// internal/cli/calc.go
package gpubench

import (
	"github.com/mwiater/gpubench/internal/derive"
	"github.com/mwiater/gpubench/internal/logging"
	"github.com/mwiater/gpubench/internal/session"
	"github.com/spf13/cobra"
)

// calcCmd implements 'calc', which fills the derived throughput columns of
// text and vision-text inference rows.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute derived throughput metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, path, err := loadSession()
		if err != nil {
			return err
		}
		res := derive.Calculate(p.Performance)
		logging.LogEvent("calc: updated=%d skipped=%d", res.Updated, res.Skipped)
		if err := session.Save(path, p); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printSuccess(out, "Updated %d row(s)", res.Updated)
		if res.Skipped > 0 {
			printWarning(out, "Skipped %d row(s) with missing or non-numeric inputs", res.Skipped)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
