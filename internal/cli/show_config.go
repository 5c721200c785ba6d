// internal/cli/show_config.go
package gpubench

import (
	"github.com/spf13/cobra"
)

var showConfigRaw bool

// showConfigCmd implements 'show config'.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the config file is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShowConfig(cmd.OutOrStdout(), showConfigRaw)
	},
}

func init() {
	showConfigCmd.Flags().BoolVar(&showConfigRaw, "raw", false, "pretty-print the decoded configuration struct")
	showCmd.AddCommand(showConfigCmd)
}
