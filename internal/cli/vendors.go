// internal/cli/vendors.go
package gpubench

import (
	"fmt"

	"github.com/mwiater/gpubench/internal/vendor"
	"github.com/spf13/cobra"
)

// vendorsCmd implements 'vendors', which shows how a vendor string parses.
var vendorsCmd = &cobra.Command{
	Use:   "vendors [vendor-string]",
	Short: "Parse a vendor string (or the session's) into vendors and GPUs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := ""
		if len(args) == 1 {
			raw = args[0]
		} else {
			p, _, err := loadSession()
			if err != nil {
				return err
			}
			raw = p.VendorString
		}
		vendors := vendor.Parse(raw)
		out := cmd.OutOrStdout()
		if len(vendors) == 0 {
			printWarning(out, "No vendors parsed from %q", raw)
			return nil
		}
		printHeading(out, "Vendors (%d):", len(vendors))
		for i, v := range vendors {
			fmt.Fprintf(out, "  %d. %s  GPU: %s\n", i+1, v.Name, v.GPU)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vendorsCmd)
}
