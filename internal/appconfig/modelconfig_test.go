// internal/appconfig/modelconfig_test.go
package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadModelConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "model_config.yaml")

	mc, err := LoadModelConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"DeepSeek-R1", "yolov11", "qwen14B"}, mc.ModelNames)
	require.Len(t, mc.TestTypes, 10)
	assert.Equal(t, "文本推理", mc.TestTypes[0])

	_, err = os.Stat(path)
	require.NoError(t, err, "default file should be written")

	again, err := LoadModelConfig(path)
	require.NoError(t, err)
	assert.Equal(t, mc, again)
}

func TestLoadModelConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model_names:\n  - M1\ntest_types:\n  - 图像识别\n"), 0o644))

	mc, err := LoadModelConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"M1"}, mc.ModelNames)
	assert.Equal(t, []string{"图像识别"}, mc.TestTypes)
}

func TestLoadModelConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model_names: [unterminated\n"), 0o644))

	mc, err := LoadModelConfig(path)
	require.Error(t, err)
	assert.Empty(t, mc.ModelNames)
	assert.Empty(t, mc.TestTypes)
}
