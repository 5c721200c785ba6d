// internal/cli/report_entry.go
package gpubench

import (
	"encoding/json"
	"fmt"

	"github.com/mwiater/gpubench/internal/narrative"
	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/session"
	"github.com/mwiater/gpubench/internal/util"
	"github.com/spf13/cobra"
)

func newAssembler() *narrative.Assembler {
	a := narrative.New(getConfig().Baseline())
	a.Now = now
	return a
}

func assemble(p *record.Project) string {
	return newAssembler().Assemble(p)
}

func runReport(cmd *cobra.Command, opts reportOptions) error {
	p, path, err := loadSession()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if opts.json {
		report := newAssembler().Engine.Compare(p.Performance, p.PKSelections)
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	text := assemble(p)
	p.Summary = text
	if err := session.Save(path, p); err != nil {
		return err
	}

	target := opts.output
	if target == "" {
		target = getConfig().ReportPath
	}
	if target == "" {
		fmt.Fprintln(out, text)
		return nil
	}
	if err := util.WriteFile(target, []byte(text+"\n")); err != nil {
		return fmt.Errorf("unable to write report %s: %w", target, err)
	}
	printSuccess(out, "Report written to %s", target)
	return nil
}
