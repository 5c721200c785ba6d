// internal/cli/root.go
package gpubench

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/mwiater/gpubench/internal/appconfig"
	"github.com/mwiater/gpubench/internal/logging"
	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:          "gpubench",
	Short:        "gpubench: record GPU benchmark results and compare vendors",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults). Flags bound to viper override file values;
		//    only the default config path may be missing.
		cfg, err := appconfig.Read(viper.GetViper(), cfgFile, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		if !cmd.Flags().Changed("debug") {
			_ = cmd.Flags().Set("debug", strconv.FormatBool(cfg.Debug))
		}
		currentConfig = &cfg

		return logging.Init(logging.Options{
			Path:    cfg.LogFilePath(),
			Level:   cfg.Level(),
			Console: cfg.Debug,
		})
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		_ = logging.Close()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.yaml)")

	rootCmd.PersistentFlags().StringP("session", "s", appconfig.DefaultSessionPath, "session file holding the project data")
	rootCmd.PersistentFlags().String("modelConfig", appconfig.DefaultModelConfigPath, "YAML list of models and test types")
	rootCmd.PersistentFlags().String("baselineToken", appconfig.DefaultBaselineToken, "vendor name fragment that marks the baseline vendor")
	rootCmd.PersistentFlags().String("logFile", "gpubench.log", "log file path")
	rootCmd.PersistentFlags().String("logLevel", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Bind flags to Viper keys (flags override config)
	for _, name := range []string{"session", "modelConfig", "baselineToken", "logFile", "logLevel", "debug"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// getConfig returns the loaded application configuration.
func getConfig() appconfig.Config {
	if currentConfig == nil {
		return appconfig.Config{}
	}
	return *currentConfig
}

// DebugEnabled reflects the merged Viper state.
func DebugEnabled() bool { return viper.GetBool("debug") }

func loadSession() (*record.Project, string, error) {
	path := getConfig().SessionPath()
	p, err := session.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, path, fmt.Errorf("no session at %s (run 'gpubench init' first)", path)
		}
		return nil, path, err
	}
	return p, path, nil
}
