// internal/cli/problem_entry.go
package gpubench

import (
	"strings"

	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/session"
	"github.com/spf13/cobra"
)

func runProblemAdd(cmd *cobra.Command, opts problemOptions) error {
	p, path, err := loadSession()
	if err != nil {
		return err
	}
	entry := record.ProblemEntry{
		Category:    strings.TrimSpace(opts.category),
		Description: strings.TrimSpace(opts.description),
		Person:      strings.TrimSpace(opts.person),
		Solution:    strings.TrimSpace(opts.solution),
	}

	// The blank row a project always carries is filled before a new one is added.
	var id string
	if blank, ok := firstBlankProblem(p); ok {
		err = p.UpdateProblem(blank, func(e *record.ProblemEntry) {
			e.Category, e.Description, e.Person, e.Solution = entry.Category, entry.Description, entry.Person, entry.Solution
		})
		id = blank
	} else {
		id, err = p.AddProblem(entry)
	}
	if err != nil {
		return err
	}
	if err := session.Save(path, p); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Recorded problem %s", id)
	return nil
}

func firstBlankProblem(p *record.Project) (string, bool) {
	for _, e := range p.Problems {
		if e == (record.ProblemEntry{ID: e.ID}) {
			return e.ID, true
		}
	}
	return "", false
}

func runProblemRemove(cmd *cobra.Command, id string) error {
	p, path, err := loadSession()
	if err != nil {
		return err
	}
	if err := p.RemoveProblem(id); err != nil {
		return err
	}
	if err := session.Save(path, p); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Removed problem %s", id)
	return nil
}
