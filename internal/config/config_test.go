package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(t.TempDir(), "tally")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, configFileExt))
	assert.Equal(t, filepath.Join(home, ".tally"), cfg.DataDir)
	assert.Equal(t, "tally.db", cfg.DBFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, filepath.Join(home, ".tally", "tally.db"), cfg.DBPath())
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(t.TempDir(), "data")
	yaml := "data_dir: " + data + "\n" +
		"db_file: custom.db\n" +
		"log_level: debug\n" +
		"tick_interval: 250ms\n" +
		"folder_palette: [\"red\", \"blue\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(yaml), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, data, cfg.DataDir)
	assert.Equal(t, "custom.db", cfg.DBFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, []string{"red", "blue"}, cfg.FolderPalette)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("log_level: info\ndata_dir: /tmp/x\n"), 0644))
	t.Setenv("TALLY_LOG_LEVEL", "error")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("data_dir: /tmp/x\nlog_level: chatty\n"), 0644))

	_, err := Load(dir)

	assert.ErrorIs(t, err, ErrLogLevelUnknown)
}

func TestConfigValidate(t *testing.T) {
	valid := Config{DataDir: "/tmp", DBFile: "t.db", LogLevel: "warn", TickInterval: time.Second}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"valid", func(c *Config) {}, nil},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, ErrDataDirEmpty},
		{"empty db file", func(c *Config) { c.DBFile = "" }, ErrDBFileEmpty},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, ErrLogLevelUnknown},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }, ErrTickIntervalInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "want %v, got %v", tt.wantErr, err)
		})
	}
}

func TestDefaultConfigDirHonoursEnv(t *testing.T) {
	t.Setenv(envConfigDir, "/custom/place")

	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/place", dir)
}
