package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"

	EnvPrefix = "CHESTDEF"
)

var supportedLocales = []string{"pt", "en"}

type Config struct {
	DataDir  string
	Locale   string
	Store    string
	LogLevel string
	DBPath   string
}

// SetDefaults registers default values with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("locale", "pt")
	v.SetDefault("store", StoreSQLite)
	v.SetDefault("log_level", "INFO")
}

// Load resolves configuration from defaults, {data_dir}/config.yaml and
// CHESTDEF_* environment variables, in increasing priority. Flags bound to v
// by the caller win over all of them.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	dataDir := v.GetString("data_dir")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := New(v.GetString("data_dir"))
	if err != nil {
		return Config{}, err
	}
	cfg.Locale = strings.ToLower(v.GetString("locale"))
	cfg.Store = strings.ToLower(v.GetString("store"))
	cfg.LogLevel = strings.ToUpper(v.GetString("log_level"))
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:  dataDir,
		Locale:   "pt",
		Store:    StoreSQLite,
		LogLevel: "INFO",
		DBPath:   filepath.Join(dataDir, "chestdef.db"),
	}, nil
}

func (c Config) Validate() error {
	if !SupportedLocale(c.Locale) {
		return fmt.Errorf("unsupported locale %q (want one of %s)", c.Locale, strings.Join(supportedLocales, ", "))
	}
	switch c.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("unsupported store %q (want file or sqlite)", c.Store)
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}
	return nil
}

func SupportedLocale(locale string) bool {
	for _, l := range supportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "chestdef")
	}
	return ".chestdef"
}
