package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Inventory specifics
	Database DatabaseConfig
	Storage  StorageConfig
	Admin    AdminConfig
	Sweeper  SweeperConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding headers are believed.
	// Empty means client addresses come from the socket only.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Driver       string // sqlite | postgres
	DSN          string
	MaxOpenConns int
	TxTimeout    time.Duration
}

type StorageConfig struct {
	Backend      string // local | gcs
	StagingDir   string
	MaxSizeBytes int64
	SizeRule     string // legacy | binary
	Local        LocalStorageConfig
	GCS          GCSConfig
}

type LocalStorageConfig struct {
	Root         string
	PublicPrefix string
}

type GCSConfig struct {
	Bucket          string
	CredentialsPath string
	PublicBaseURL   string
}

type AdminConfig struct {
	Password        string
	RateLimitPerMin int
}

type SweeperConfig struct {
	Schedule    string
	GracePeriod time.Duration
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	BackendLocal = "local"
	BackendGCS   = "gcs"
)

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, . and /etc/hardware-inventory/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/hardware-inventory/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Database
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = viper.GetString("database.dsn")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.DSN = dbURL
	}
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.TxTimeout = viper.GetDuration("database.tx_timeout")

	// Image storage
	cfg.Storage.Backend = viper.GetString("storage.backend")
	cfg.Storage.StagingDir = viper.GetString("storage.staging_dir")
	cfg.Storage.MaxSizeBytes = viper.GetInt64("storage.max_size_bytes")
	cfg.Storage.SizeRule = viper.GetString("storage.size_rule")
	cfg.Storage.Local.Root = viper.GetString("storage.local.root")
	cfg.Storage.Local.PublicPrefix = viper.GetString("storage.local.public_prefix")
	cfg.Storage.GCS.Bucket = viper.GetString("storage.gcs.bucket")
	cfg.Storage.GCS.CredentialsPath = viper.GetString("storage.gcs.credentials_path")
	cfg.Storage.GCS.PublicBaseURL = viper.GetString("storage.gcs.public_base_url")
	if googleCreds := viper.GetString("google_application_credentials"); googleCreds != "" && cfg.Storage.GCS.CredentialsPath == "" {
		cfg.Storage.GCS.CredentialsPath = googleCreds
	}

	// Admin gate
	cfg.Admin.Password = viper.GetString("admin.password")
	if adminPassword := viper.GetString("admin_password"); adminPassword != "" {
		cfg.Admin.Password = adminPassword
	}
	cfg.Admin.RateLimitPerMin = viper.GetInt("admin.rate_limit_per_min")

	// Orphan sweeper
	cfg.Sweeper.Schedule = viper.GetString("sweeper.schedule")
	cfg.Sweeper.GracePeriod = viper.GetDuration("sweeper.grace_period")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.driver", DriverSQLite)
	viper.SetDefault("database.dsn", "./data/inventory.db")
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.tx_timeout", "10s")

	viper.SetDefault("storage.backend", BackendLocal)
	viper.SetDefault("storage.staging_dir", "./data/uploads")
	viper.SetDefault("storage.size_rule", "legacy")
	viper.SetDefault("storage.local.root", "./public/images")
	viper.SetDefault("storage.local.public_prefix", "/images")

	viper.SetDefault("admin.rate_limit_per_min", 30)

	viper.SetDefault("sweeper.schedule", "@every 1h")
	viper.SetDefault("sweeper.grace_period", "1h")
}

func (cfg *Config) validate() error {
	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}

	switch cfg.Storage.Backend {
	case BackendLocal:
		if cfg.Storage.Local.Root == "" {
			return fmt.Errorf("storage.local.root is required for the local backend")
		}
	case BackendGCS:
		if cfg.Storage.GCS.Bucket == "" {
			return fmt.Errorf("storage.gcs.bucket is required for the gcs backend")
		}
	default:
		return fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}

	switch cfg.Storage.SizeRule {
	case "legacy", "binary":
	default:
		return fmt.Errorf("unsupported storage.size_rule %q", cfg.Storage.SizeRule)
	}
	if cfg.Storage.StagingDir == "" {
		return fmt.Errorf("storage.staging_dir is required")
	}

	if cfg.Admin.Password == "" {
		return fmt.Errorf("admin.password is required - set ADMIN_PASSWORD")
	}

	return nil
}
