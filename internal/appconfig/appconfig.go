// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.yaml"
	// DefaultSessionPath is where the session document lives unless configured.
	DefaultSessionPath = "gpubench.json"
	// DefaultModelConfigPath is the model and test type list.
	DefaultModelConfigPath = "model_config.yaml"
	// DefaultBaselineToken identifies the baseline vendor.
	DefaultBaselineToken = "h3c"
	defaultLogFile       = "gpubench.log"
	defaultLogLevel      = "info"
)

// Config represents the top-level application configuration.
type Config struct {
	Session       string `mapstructure:"session" json:"session"`
	ModelConfig   string `mapstructure:"modelConfig" json:"modelConfig"`
	BaselineToken string `mapstructure:"baselineToken" json:"baselineToken"`
	LogFile       string `mapstructure:"logFile" json:"logFile,omitempty"`
	LogLevel      string `mapstructure:"logLevel" json:"logLevel,omitempty"`
	Debug         bool   `mapstructure:"debug" json:"debug"`
	ExportPath    string `mapstructure:"export" json:"export,omitempty"`
	ReportPath    string `mapstructure:"reportPath" json:"reportPath,omitempty"`
	ConfigPath    string `mapstructure:"-" json:"-"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("session", DefaultSessionPath)
	v.SetDefault("modelConfig", DefaultModelConfigPath)
	v.SetDefault("baselineToken", DefaultBaselineToken)
	v.SetDefault("logFile", defaultLogFile)
	v.SetDefault("logLevel", defaultLogLevel)
	v.SetDefault("debug", false)
	v.SetDefault("export", "")
	v.SetDefault("reportPath", "")
}

// SessionPath returns the session document path, applying the default if unset.
func (c Config) SessionPath() string {
	return orDefault(c.Session, DefaultSessionPath)
}

// ModelConfigPath returns the model list path, applying the default if unset.
func (c Config) ModelConfigPath() string {
	return orDefault(c.ModelConfig, DefaultModelConfigPath)
}

// Baseline returns the baseline vendor token.
func (c Config) Baseline() string {
	return orDefault(c.BaselineToken, DefaultBaselineToken)
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	return orDefault(c.LogFile, defaultLogFile)
}

// Level returns the effective log level. Debug mode forces debug.
func (c Config) Level() string {
	if c.Debug {
		return "debug"
	}
	return orDefault(c.LogLevel, defaultLogLevel)
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return def
}

// Load reads the configuration at path on top of the defaults. A missing
// file at the default path is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	return Read(viper.New(), path, path != "")
}

// Read loads the configuration at path into v on top of the defaults and
// decodes the merged result, so flags bound to v override file values. An
// empty path means DefaultConfigPath. A missing file is an error only when
// explicit is set.
func Read(v *viper.Viper, path string, explicit bool) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	SetDefaults(v)
	v.SetConfigFile(path)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return decode(v, "")
		}
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	return decode(v, path)
}

func decode(v *viper.Viper, path string) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ConfigPath = path
	return cfg, nil
}
