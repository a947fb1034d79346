package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	appName   = "walls"
	envPrefix = "WALLS"
)

// Config holds all application configuration
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Downloads DownloadsConfig `mapstructure:"downloads"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Wallpaper WallpaperConfig `mapstructure:"wallpaper"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"` // Empty keeps everything in memory
}

// DownloadsConfig holds download configuration
type DownloadsConfig struct {
	Dir           string        `mapstructure:"dir"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	Burst         int           `mapstructure:"burst"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// CatalogConfig points at an optional catalog override
type CatalogConfig struct {
	File string `mapstructure:"file"`
}

// WallpaperConfig selects how wallpapers are applied
type WallpaperConfig struct {
	Setter string   `mapstructure:"setter"` // "log", "auto", or a command
	Args   []string `mapstructure:"args"`   // Extra args for a setter command
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			DataDir: defaultDataPath(),
		},
		Downloads: DownloadsConfig{
			Dir:           defaultPicturesPath(),
			RatePerSecond: 2,
			Burst:         2,
			Timeout:       60 * time.Second,
		},
		Wallpaper: WallpaperConfig{
			Setter: "log",
		},
		Logging: LoggingConfig{
			File:       filepath.Join(defaultDataPath(), "walls.log"),
			Level:      "INFO",
			MaxSizeMB:  10,
			MaxBackups: 2,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName)
	}
}

func defaultPicturesPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Pictures")
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("storage.data_dir", cfg.Storage.DataDir)

	v.SetDefault("downloads.dir", cfg.Downloads.Dir)
	v.SetDefault("downloads.rate_per_second", cfg.Downloads.RatePerSecond)
	v.SetDefault("downloads.burst", cfg.Downloads.Burst)
	v.SetDefault("downloads.timeout", cfg.Downloads.Timeout)

	v.SetDefault("catalog.file", cfg.Catalog.File)

	v.SetDefault("wallpaper.setter", cfg.Wallpaper.Setter)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	v.SetDefault("logging.max_age_days", cfg.Logging.MaxAgeDays)
	v.SetDefault("logging.compress", cfg.Logging.Compress)
}

// LoadConfig loads configuration from file and environment.
// An empty configFile searches the default config dir and the working dir;
// not finding a file there is not an error.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()
	setDefaults(v, cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. WALLS_DOWNLOADS_DIR
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	for _, p := range []*string{&cfg.Storage.DataDir, &cfg.Downloads.Dir, &cfg.Catalog.File, &cfg.Logging.File} {
		expanded, err := ExpandHome(*p)
		if err != nil {
			return nil, err
		}
		*p = expanded
	}

	return cfg, nil
}

// SaveConfig writes cfg to path, or to the default config dir when path
// is empty.
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	v := viper.New()
	v.Set("storage.data_dir", cfg.Storage.DataDir)

	v.Set("downloads.dir", cfg.Downloads.Dir)
	v.Set("downloads.rate_per_second", cfg.Downloads.RatePerSecond)
	v.Set("downloads.burst", cfg.Downloads.Burst)
	v.Set("downloads.timeout", cfg.Downloads.Timeout.String())

	v.Set("catalog.file", cfg.Catalog.File)

	v.Set("wallpaper.setter", cfg.Wallpaper.Setter)
	if len(cfg.Wallpaper.Args) > 0 {
		v.Set("wallpaper.args", cfg.Wallpaper.Args)
	}

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.Set("logging.max_backups", cfg.Logging.MaxBackups)
	v.Set("logging.max_age_days", cfg.Logging.MaxAgeDays)
	v.Set("logging.compress", cfg.Logging.Compress)

	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
