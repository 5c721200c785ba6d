// internal/cli/show_config_entry.go
package gpubench

import (
	"io"

	"github.com/mwiater/gpubench/internal/appconfig"
)

func runShowConfig(out io.Writer, raw bool) {
	cfg := getConfig()
	if raw {
		appconfig.DumpConfig(out, cfg)
		return
	}
	appconfig.ShowConfig(out, cfg.ConfigPath, cfg)
}
