package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"chestdef/internal/platform/config"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	v := viper.New()
	v.Set("data_dir", dir)

	cfg, err := config.Load(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "pt" || cfg.Store != config.StoreSQLite || cfg.LogLevel != "INFO" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.DBPath != filepath.Join(dir, "chestdef.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
}

func TestLoadReadsConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("locale: en\nstore: file\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CHESTDEF_LOG_LEVEL", "debug")
	v := viper.New()
	v.Set("data_dir", dir)

	cfg, err := config.Load(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "en" || cfg.Store != config.StoreFile {
		t.Fatalf("config file values not applied: %+v", cfg)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Fatalf("env override not applied: %+v", cfg)
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	bad := cfg
	bad.Locale = "fr"
	if err := bad.Validate(); err == nil {
		t.Fatalf("fr locale should be rejected")
	}
	bad = cfg
	bad.Store = "redis"
	if err := bad.Validate(); err == nil {
		t.Fatalf("redis store should be rejected")
	}
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty data dir should fail")
	}
}
