// internal/cli/view.go
package gpubench

import (
	"github.com/mwiater/gpubench/internal/tui"
	"github.com/spf13/cobra"
)

// runViewer is swapped in tests.
var runViewer = tui.Run

// viewCmd implements 'view', which opens the report in a terminal viewer.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the project summary in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := loadSession()
		if err != nil {
			return err
		}
		return runViewer(p.Name+" 项目总结", assemble(p))
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
