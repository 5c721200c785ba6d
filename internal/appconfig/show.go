// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

// ShowConfig prints the effective configuration.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Session:         %s\n", cfg.SessionPath())
	fmt.Fprintf(out, "  Model Config:    %s\n", cfg.ModelConfigPath())
	fmt.Fprintf(out, "  Baseline Vendor: %s\n", cfg.Baseline())
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Log Level:       %s\n", cfg.Level())
	fmt.Fprintf(out, "  Export Path:     %s\n", cfg.ExportPath)
	fmt.Fprintf(out, "  Report Path:     %s\n", cfg.ReportPath)
}

// DumpConfig pretty-prints the raw decoded configuration.
func DumpConfig(out io.Writer, cfg Config) {
	pp.Fprintln(out, cfg)
}
