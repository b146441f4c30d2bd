package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ContentDir: "./content",
		OutputDir:  "./dist",
		Locale:     "en-US",
		Jobs:       4,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(_ *Config) {}, ""},
		{"missing content dir", func(c *Config) { c.ContentDir = "" }, "content_dir is required"},
		{"missing output dir", func(c *Config) { c.OutputDir = "" }, "output_dir is required"},
		{"negative jobs", func(c *Config) { c.Jobs = -1 }, "jobs must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	cfg := validConfig()
	cfg.CompatData = "./data/compat.json"

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("content_dir: [broken"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DREF_CONTENT_DIR", "/env/content")
	t.Setenv("DREF_OUTPUT_DIR", "/env/out")
	t.Setenv("DREF_BASE_PATH", "/env-base")
	t.Setenv("DREF_COMPAT_DATA", "/env/compat.json")
	t.Setenv("DREF_LOCALE", "fr")

	cfg := validConfig()
	cfg.LoadFromEnv()

	assert.Equal(t, "/env/content", cfg.ContentDir)
	assert.Equal(t, "/env/out", cfg.OutputDir)
	assert.Equal(t, "/env-base", cfg.BasePath)
	assert.Equal(t, "/env/compat.json", cfg.CompatData)
	assert.Equal(t, "fr", cfg.Locale)
}

func TestLoadFromEnv_EmptyVarsIgnored(t *testing.T) {
	t.Setenv("DREF_CONTENT_DIR", "")

	cfg := validConfig()
	cfg.LoadFromEnv()
	assert.Equal(t, "./content", cfg.ContentDir)
}

func TestLoadWithEnv_MissingFileStartsEmpty(t *testing.T) {
	t.Setenv("DREF_CONTENT_DIR", "/env/content")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "/env/content", cfg.ContentDir)
	assert.Empty(t, cfg.OutputDir)
}

func TestDefaultConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "dref", "config.yml"), DefaultConfigPath())
}
