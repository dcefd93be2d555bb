package adapter

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

// CatalogProvider identifies the recipe catalog backend
type CatalogProvider string

const (
	CatalogProviderMealDB CatalogProvider = "mealdb"
)

// StorageDriver identifies the favorites persistence backend
type StorageDriver string

const (
	StorageDriverBolt   StorageDriver = "bolt"
	StorageDriverSQLite StorageDriver = "sqlite"
	StorageDriverMemory StorageDriver = "memory"
)

// FilterMode selects how list filtering matches recipe names
type FilterMode string

const (
	FilterModeContains   FilterMode = "contains"
	FilterModeFuzzy      FilterMode = "fuzzy"
	FilterModeNormalized FilterMode = "normalized"
)

const (
	appName          = "mealbook"
	DefaultMealDBURL = "https://www.themealdb.com/api/json/v1/1"
)

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Storage StorageConfig `mapstructure:"storage"`
	Opener  OpenerConfig  `mapstructure:"opener"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds remote catalog configuration
type CatalogConfig struct {
	Provider             CatalogProvider `mapstructure:"provider"`
	BaseURL              string          `mapstructure:"base_url"`
	Timeout              time.Duration   `mapstructure:"timeout"`                // 0 = http.Client default
	MaxConcurrentLookups int             `mapstructure:"max_concurrent_lookups"` // favorites fan-out bound
}

// StorageConfig holds favorites persistence configuration
type StorageConfig struct {
	Driver StorageDriver `mapstructure:"driver"`
	Path   string        `mapstructure:"path"` // Data directory
}

// OpenerConfig holds the command used to open video links
type OpenerConfig struct {
	Command string   `mapstructure:"command"` // empty = system default
	Args    []string `mapstructure:"args"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	FilterMode FilterMode `mapstructure:"filter_mode"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Provider:             CatalogProviderMealDB,
			BaseURL:              DefaultMealDBURL,
			MaxConcurrentLookups: 8,
		},
		Storage: StorageConfig{
			Driver: StorageDriverBolt,
			Path:   defaultDataPath(),
		},
		UI: UIConfig{
			FilterMode: FilterModeContains,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), appName+".log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName)
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// LoadConfig loads configuration from file and environment.
// An explicit configFile must exist; otherwise the default locations are
// searched and a missing file means defaults.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	setDefaults(v, cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides (MEALBOOK_STORAGE_DRIVER, ...)
	v.SetEnvPrefix(strings.ToUpper(appName))
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.provider", cfg.Catalog.Provider)
	v.SetDefault("catalog.base_url", cfg.Catalog.BaseURL)
	v.SetDefault("catalog.timeout", cfg.Catalog.Timeout)
	v.SetDefault("catalog.max_concurrent_lookups", cfg.Catalog.MaxConcurrentLookups)

	v.SetDefault("storage.driver", cfg.Storage.Driver)
	v.SetDefault("storage.path", cfg.Storage.Path)

	v.SetDefault("opener.command", cfg.Opener.Command)
	v.SetDefault("opener.args", cfg.Opener.Args)

	v.SetDefault("ui.filter_mode", cfg.UI.FilterMode)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate rejects values no component can act on
func (c *Config) Validate() error {
	switch c.Catalog.Provider {
	case CatalogProviderMealDB:
	default:
		return fmt.Errorf("unknown catalog provider: %s", c.Catalog.Provider)
	}
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required")
	}

	switch c.Storage.Driver {
	case StorageDriverBolt, StorageDriverSQLite, StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage driver: %s", c.Storage.Driver)
	}

	switch c.UI.FilterMode {
	case FilterModeContains, FilterModeFuzzy, FilterModeNormalized:
	default:
		return fmt.Errorf("unknown filter mode: %s", c.UI.FilterMode)
	}

	if c.Catalog.MaxConcurrentLookups < 0 {
		return fmt.Errorf("catalog.max_concurrent_lookups must not be negative")
	}
	return nil
}

// ExpandPath resolves a leading ~ to the user's home directory
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
