package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	"hardware-inventory/config"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults with required password", func(t *testing.T) {
		viper.Reset()
		t.Setenv("ADMIN_PASSWORD", "s3cret")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Admin.Password != "s3cret" {
			t.Errorf("expected password from env, got %q", cfg.Admin.Password)
		}
		if cfg.Database.Driver != config.DriverSQLite {
			t.Errorf("expected sqlite default, got %s", cfg.Database.Driver)
		}
		if cfg.Database.TxTimeout != 10*time.Second {
			t.Errorf("expected 10s tx timeout, got %s", cfg.Database.TxTimeout)
		}
		if cfg.Storage.Backend != config.BackendLocal || cfg.Storage.Local.PublicPrefix != "/images" {
			t.Errorf("unexpected storage defaults: %+v", cfg.Storage)
		}
		if cfg.Storage.SizeRule != "legacy" {
			t.Errorf("expected legacy size rule, got %s", cfg.Storage.SizeRule)
		}
		if cfg.Sweeper.Schedule != "@every 1h" || cfg.Sweeper.GracePeriod != time.Hour {
			t.Errorf("unexpected sweeper defaults: %+v", cfg.Sweeper)
		}
	})

	t.Run("Missing password", func(t *testing.T) {
		viper.Reset()
		t.Setenv("ADMIN_PASSWORD", "")

		if _, err := config.Load(); err == nil {
			t.Errorf("expected missing password error")
		}
	})

	t.Run("Nested env override", func(t *testing.T) {
		viper.Reset()
		t.Setenv("ADMIN_PASSWORD", "pw")
		t.Setenv("STORAGE_SIZE_RULE", "binary")
		t.Setenv("DATABASE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "postgres://localhost/inventory")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Storage.SizeRule != "binary" {
			t.Errorf("expected binary, got %s", cfg.Storage.SizeRule)
		}
		if cfg.Database.Driver != config.DriverPostgres || cfg.Database.DSN != "postgres://localhost/inventory" {
			t.Errorf("unexpected database config: %+v", cfg.Database)
		}
	})

	t.Run("Unsupported backend", func(t *testing.T) {
		viper.Reset()
		t.Setenv("ADMIN_PASSWORD", "pw")
		t.Setenv("STORAGE_BACKEND", "ftp")

		if _, err := config.Load(); err == nil {
			t.Errorf("expected unsupported backend error")
		}
	})

	t.Run("GCS requires bucket", func(t *testing.T) {
		viper.Reset()
		t.Setenv("ADMIN_PASSWORD", "pw")
		t.Setenv("STORAGE_BACKEND", "gcs")

		if _, err := config.Load(); err == nil {
			t.Errorf("expected bucket error")
		}
	})
}
