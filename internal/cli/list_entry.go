// internal/cli/list_entry.go
package gpubench

import (
	"fmt"
	"strings"

	"github.com/mwiater/gpubench/internal/util"
	"github.com/spf13/cobra"
)

// listValueWidth caps free-text columns in list output.
const listValueWidth = 80

type rowKind int

const (
	rowsEnv rowKind = iota
	rowsPerf
	rowsPK
	rowsProblems
)

func runListRows(cmd *cobra.Command, kind rowKind) error {
	p, _, err := loadSession()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch kind {
	case rowsEnv:
		printHeading(out, "Environment (%d):", len(p.Environment))
		for _, e := range p.Environment {
			fmt.Fprintf(out, "  %s  %s / %s / %s（%s） x%s  dataset=%s tool=%s\n",
				e.ID, e.Model, e.TestType, e.Vendor, e.GPU, e.GPUCount, e.Dataset, e.Tool)
		}
	case rowsPerf:
		printHeading(out, "Performance (%d):", len(p.Performance))
		for _, r := range p.Performance {
			fmt.Fprintf(out, "  %s  %s / %s / %s（%s）\n", r.ID, r.Model, r.TestType, r.Vendor, r.GPU)
			for _, f := range r.InputFields {
				fmt.Fprintf(out, "      %s = %s\n", f, r.InputValues[f])
			}
			for _, f := range r.CalcFields {
				fmt.Fprintf(out, "      %s = %s (calc)\n", f, r.CalcValues[f])
			}
		}
	case rowsPK:
		printHeading(out, "PK selections (%d):", len(p.PKSelections))
		for _, pk := range p.PKSelections {
			fmt.Fprintf(out, "  %s / %s: %s\n", pk.Model, pk.TestType, pk.SelectedPK)
			fmt.Fprintf(out, "      options: %s\n", util.Truncate(strings.Join(pk.PKOptions, ", "), listValueWidth))
		}
	case rowsProblems:
		printHeading(out, "Problems (%d):", len(p.Problems))
		for _, e := range p.Problems {
			fmt.Fprintf(out, "  %s  [%s] %s (%s) %s\n", e.ID, e.Category, util.Truncate(e.Description, listValueWidth), e.Person, util.Truncate(e.Solution, listValueWidth))
		}
	}
	return nil
}
