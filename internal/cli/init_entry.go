// internal/cli/init_entry.go
package gpubench

import (
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/gpubench/internal/appconfig"
	"github.com/mwiater/gpubench/internal/logging"
	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/session"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func runInit(cmd *cobra.Command, opts initOptions) error {
	out := cmd.OutOrStdout()
	cfg := getConfig()
	path := cfg.SessionPath()

	if _, err := os.Stat(path); err == nil && !opts.force {
		return fmt.Errorf("session %s already exists (pass --force to overwrite)", path)
	}

	mc, err := appconfig.LoadModelConfig(cfg.ModelConfigPath())
	if err != nil {
		printWarning(out, "model config: %v", err)
	}

	p := record.NewProject()
	p.Name = strings.TrimSpace(opts.name)
	p.TestCycle = opts.cycle
	p.VendorString = strings.TrimSpace(opts.vendors)
	p.CustomerName = opts.customer
	p.CustomerIndustry = opts.industry
	p.BidStatus = opts.bidStatus
	p.BidShare = opts.bidShare
	p.BidFailReason = opts.bidFailReason
	p.TestOwner = opts.owner

	if err := p.ValidateBasics(); err != nil {
		return err
	}
	if len(p.Vendors()) == 0 {
		printWarning(out, "no vendor in %q matches name（GPU）", p.VendorString)
	}

	for _, flagValue := range opts.models {
		name, types, err := parseModelFlag(flagValue)
		if err != nil {
			return err
		}
		if len(mc.ModelNames) > 0 && !lo.Contains(mc.ModelNames, name) {
			printWarning(out, "model %q is not listed in %s", name, cfg.ModelConfigPath())
		}
		for _, tt := range types {
			if len(mc.TestTypes) > 0 && !lo.Contains(mc.TestTypes, tt) {
				printWarning(out, "test type %q is not listed in %s", tt, cfg.ModelConfigPath())
			}
		}
		if err := p.SetModel(name, types); err != nil {
			return err
		}
	}
	if err := p.ValidateModels(); err != nil {
		return err
	}

	p.InitEnvironment()
	for i := range p.Environment {
		e := &p.Environment[i]
		e.GPUCount = record.Value(strings.TrimSpace(opts.gpuCount))
		e.Dataset = strings.TrimSpace(opts.dataset)
		e.Tool = strings.TrimSpace(opts.tool)
	}
	if len(p.Environment) > 0 && p.ValidateEnvironment() == nil {
		p.InitPerformance()
	}

	if err := session.Save(path, p); err != nil {
		return err
	}
	logging.LogEvent("init: %s with %d environment rows", path, len(p.Environment))

	printSuccess(out, "Session written to %s", path)
	fmt.Fprintf(out, "  Vendors:          %d\n", len(p.Vendors()))
	fmt.Fprintf(out, "  Models:           %d\n", len(p.SelectedModels))
	fmt.Fprintf(out, "  Environment rows: %d\n", len(p.Environment))
	fmt.Fprintf(out, "  Performance rows: %d\n", len(p.Performance))
	if len(p.Performance) == 0 && len(p.Environment) > 0 {
		fmt.Fprintln(out, "Fill GPU count and dataset with 'gpubench set env', then run 'gpubench perf init'.")
	}
	return nil
}

// parseModelFlag splits "name=type1,type2".
func parseModelFlag(flagValue string) (string, []string, error) {
	name, types, ok := strings.Cut(flagValue, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid --model %q (want name=type1,type2)", flagValue)
	}
	list := lo.Compact(lo.Map(strings.Split(types, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	return name, list, nil
}
