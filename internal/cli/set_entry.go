// internal/cli/set_entry.go
package gpubench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/session"
	"github.com/spf13/cobra"
)

func runSetEnv(cmd *cobra.Command, id string, opts setEnvOptions) error {
	p, path, err := loadSession()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("gpu") && !flags.Changed("gpu-count") && !flags.Changed("dataset") && !flags.Changed("tool") {
		return errors.New("nothing to set (use --gpu, --gpu-count, --dataset or --tool)")
	}
	apply := func(e *record.EnvironmentEntry) {
		if flags.Changed("gpu") {
			e.GPU = strings.TrimSpace(opts.gpu)
		}
		if flags.Changed("gpu-count") {
			e.GPUCount = record.Value(strings.TrimSpace(opts.gpuCount))
		}
		if flags.Changed("dataset") {
			e.Dataset = strings.TrimSpace(opts.dataset)
		}
		if flags.Changed("tool") {
			e.Tool = strings.TrimSpace(opts.tool)
		}
	}

	updated := 0
	if id == "all" {
		for _, e := range p.Environment {
			if err := p.UpdateEnvironment(e.ID, apply); err != nil {
				return err
			}
			updated++
		}
	} else {
		if err := p.UpdateEnvironment(id, apply); err != nil {
			return err
		}
		updated = 1
	}

	if err := session.Save(path, p); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Updated %d environment row(s)", updated)
	return nil
}

func runSetValue(cmd *cobra.Command, id, field, value string) error {
	p, path, err := loadSession()
	if err != nil {
		return err
	}
	if err := p.SetInputValue(id, field, record.Value(value)); err != nil {
		return err
	}
	if err := session.Save(path, p); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "%s = %q", field, strings.TrimSpace(value))
	return nil
}

func runSetPK(cmd *cobra.Command, model, testType, metrics string) error {
	p, path, err := loadSession()
	if err != nil {
		return err
	}
	if err := p.SelectPK(model, testType, metrics); err != nil {
		return err
	}
	if err := session.Save(path, p); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "PK for %s / %s: %s", model, testType, metrics)
	return nil
}

func runSetInfo(cmd *cobra.Command, opts setInfoOptions) error {
	p, path, err := loadSession()
	if err != nil {
		return err
	}
	fields := []struct {
		flag   string
		target *string
		value  string
	}{
		{"cycle", &p.TestCycle, opts.cycle},
		{"customer", &p.CustomerName, opts.customer},
		{"industry", &p.CustomerIndustry, opts.industry},
		{"bid-status", &p.BidStatus, opts.bidStatus},
		{"bid-share", &p.BidShare, opts.bidShare},
		{"bid-fail-reason", &p.BidFailReason, opts.bidFailReason},
		{"owner", &p.TestOwner, opts.owner},
	}
	changed := 0
	for _, f := range fields {
		if cmd.Flags().Changed(f.flag) {
			*f.target = f.value
			changed++
		}
	}
	if changed == 0 {
		return fmt.Errorf("nothing to set")
	}
	if err := session.Save(path, p); err != nil {
		return err
	}
	printSuccess(cmd.OutOrStdout(), "Updated %d field(s)", changed)
	return nil
}
