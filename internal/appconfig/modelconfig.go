// internal/appconfig/modelconfig.go
package appconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mwiater/gpubench/internal/testtype"
	"gopkg.in/yaml.v3"
)

// ModelConfig lists the models and test types offered when a session is set up.
type ModelConfig struct {
	ModelNames []string `yaml:"model_names"`
	TestTypes  []string `yaml:"test_types"`
}

// DefaultModelConfig is written when no model config file exists.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		ModelNames: []string{"DeepSeek-R1", "yolov11", "qwen14B"},
		TestTypes:  testtype.Names(),
	}
}

// LoadModelConfig reads the model list at path, creating it with defaults
// when it does not exist. On a decode error the returned lists are empty and
// the error describes the file.
func LoadModelConfig(path string) (ModelConfig, error) {
	if path == "" {
		path = DefaultModelConfigPath
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		def := DefaultModelConfig()
		if err := WriteModelConfig(path, def); err != nil {
			return def, err
		}
		return def, nil
	}
	if err != nil {
		return ModelConfig{}, fmt.Errorf("read model config %q: %w", path, err)
	}

	var mc ModelConfig
	if err := yaml.Unmarshal(data, &mc); err != nil {
		return ModelConfig{}, fmt.Errorf("parse model config %q: %w", path, err)
	}
	return mc, nil
}

// WriteModelConfig stores mc at path.
func WriteModelConfig(path string, mc ModelConfig) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create model config dir: %w", err)
		}
	}
	data, err := yaml.Marshal(mc)
	if err != nil {
		return fmt.Errorf("encode model config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model config %q: %w", path, err)
	}
	return nil
}
