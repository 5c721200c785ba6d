// internal/cli/perf_entry.go
package gpubench

import (
	"strings"

	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/session"
	"github.com/mwiater/gpubench/internal/testtype"
	"github.com/spf13/cobra"
)

func runPerfInit(cmd *cobra.Command) error {
	p, path, err := loadSession()
	if err != nil {
		return err
	}
	if err := p.ValidateEnvironment(); err != nil {
		return err
	}
	p.InitPerformance()
	if err := session.Save(path, p); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Built %d performance row(s) and %d PK row(s)", len(p.Performance), len(p.PKSelections))
	return nil
}

func runPerfAdd(cmd *cobra.Command, opts perfAddOptions) error {
	p, path, err := loadSession()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, ok := testtype.Parse(strings.TrimSpace(opts.testType)); !ok {
		printWarning(out, "unknown test type %q: the row has no fields", opts.testType)
	}
	id := p.AddPerformance(
		strings.TrimSpace(opts.model),
		strings.TrimSpace(opts.testType),
		strings.TrimSpace(opts.vendor),
		strings.TrimSpace(opts.gpu),
		strings.TrimSpace(opts.dataset),
		record.Value(strings.TrimSpace(opts.gpuCount)),
	)
	if err := session.Save(path, p); err != nil {
		return err
	}
	printSuccess(out, "Added performance row %s", id)
	return nil
}

func runPerfRemove(cmd *cobra.Command, id string) error {
	p, path, err := loadSession()
	if err != nil {
		return err
	}
	if err := p.RemovePerformance(id); err != nil {
		return err
	}
	if err := session.Save(path, p); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Removed performance row %s", id)
	return nil
}
