// Package config loads tally's settings from config.yaml, TALLY_* environment
// variables and built-in defaults, in increasing order of precedence for env.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix    = "TALLY"
	envConfigDir = "TALLY_CONFIG_DIR"

	keyDataDir       = "data_dir"
	keyDBFile        = "db_file"
	keyLogLevel      = "log_level"
	keyTickInterval  = "tick_interval"
	keyFolderPalette = "folder_palette"

	defaultDataDir      = "~/.tally"
	defaultDBFile       = "tally.db"
	defaultLogLevel     = "warn"
	defaultTickInterval = 100 * time.Millisecond
)

// defaultConfigYAML is written on first run.
const defaultConfigYAML = `# tally configuration

# Where the database lives
data_dir: ~/.tally
db_file: tally.db

# debug, info, warn, error
log_level: warn

# Refresh rate of the live stopwatch board
tick_interval: 100ms

# Colors handed out to new folders, in order
# folder_palette: ["#7C3AED", "#2563EB", "#10B981"]
`

var (
	ErrDataDirEmpty        = errors.New("data_dir must not be empty")
	ErrDBFileEmpty         = errors.New("db_file must not be empty")
	ErrLogLevelUnknown     = errors.New("unknown log level")
	ErrTickIntervalInvalid = errors.New("tick_interval must be positive")
)

// Config holds the resolved settings.
type Config struct {
	DataDir       string        `mapstructure:"data_dir"`
	DBFile        string        `mapstructure:"db_file"`
	LogLevel      string        `mapstructure:"log_level"`
	TickInterval  time.Duration `mapstructure:"tick_interval"`
	FolderPalette []string      `mapstructure:"folder_palette"`
}

// DBPath is the full path of the sqlite file.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// Validate checks that the Config is usable.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.DBFile == "" {
		return ErrDBFileEmpty
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s", ErrLogLevelUnknown, c.LogLevel)
	}
	if c.TickInterval <= 0 {
		return ErrTickIntervalInvalid
	}
	return nil
}

// DefaultConfigDir returns the platform-specific configuration directory.
//
// TALLY_CONFIG_DIR wins when set.
// Linux:   $XDG_CONFIG_HOME/tally (fallback ~/.config/tally)
// macOS:   ~/Library/Application Support/tally
// Windows: %APPDATA%/tally
func DefaultConfigDir() (string, error) {
	if dir := os.Getenv(envConfigDir); dir != "" {
		return dir, nil
	}
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "tally"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "tally"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tally"), nil
}

// Load reads config.yaml from configDir, creating the directory and a default
// file on first run. A missing file is not an error.
func Load(configDir string) (Config, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return Config{}, fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return Config{}, fmt.Errorf("failed to write default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(keyDataDir, defaultDataDir)
	v.SetDefault(keyDBFile, defaultDBFile)
	v.SetDefault(keyLogLevel, defaultLogLevel)
	v.SetDefault(keyTickInterval, defaultTickInterval)
	v.SetDefault(keyFolderPalette, []string{})
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	dataDir, err := expandHome(v.GetString(keyDataDir))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:       dataDir,
		DBFile:        v.GetString(keyDBFile),
		LogLevel:      strings.ToLower(v.GetString(keyLogLevel)),
		TickInterval:  v.GetDuration(keyTickInterval),
		FolderPalette: v.GetStringSlice(keyFolderPalette),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ensureDefaultConfigFile writes the default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0644)
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand '%s': %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
