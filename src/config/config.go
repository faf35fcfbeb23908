// Package config reads the service settings from the environment.
//
// A `.env` file in the working directory is loaded first (godotenv autoload),
// then every variable is read through koanf and validated.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	BackendGCS   = "gcs"
	BackendDrive = "drive"
	BackendLocal = "local"
)

type Config struct {
	Env      string         `koanf:"app_env" validate:"required,oneof=development production test"`
	Server   ServerConfig   `koanf:",squash"`
	Database DatabaseConfig `koanf:",squash"`
	Storage  StorageConfig  `koanf:",squash"`
	Seed     SeedConfig     `koanf:",squash"`
}

type ServerConfig struct {
	Port               string `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int    `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout       int    `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout        int    `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout    int    `koanf:"shutdown_timeout" validate:"gt=0"`
	CORSAllowedOrigins string `koanf:"cors_allowed_origins" validate:"required"`
}

type DatabaseConfig struct {
	Driver             string `koanf:"db_driver" validate:"required,oneof=mysql postgres sqlite"`
	Host               string `koanf:"sql_host"`
	Port               int    `koanf:"sql_port" validate:"gte=0"`
	User               string `koanf:"sql_user_sena" validate:"required_unless=Driver sqlite"`
	Password           string `koanf:"sql_password_sena"`
	Name               string `koanf:"sql_database_sena" validate:"required"`
	InstanceConnection string `koanf:"instance_connection_name"`
	AutoMigrate        bool   `koanf:"db_auto_migrate"`
}

type StorageConfig struct {
	Backend         string `koanf:"storage_backend" validate:"required,oneof=gcs drive local"`
	Bucket          string `koanf:"gcloud_storage_bucket" validate:"required_if=Backend gcs"`
	DriveFolderID   string `koanf:"google_drive_folder_id" validate:"required_if=Backend drive"`
	CredentialsPath string `koanf:"google_credentials_path"`
	CredentialsJSON string `koanf:"google_credentials_json"`
	UploadDir       string `koanf:"upload_dir" validate:"required_if=Backend local"`
	MaxUploadBytes  int64  `koanf:"upload_max_bytes" validate:"gt=0"`
}

type SeedConfig struct {
	Username string `koanf:"seed_username"`
	Password string `koanf:"seed_password" validate:"required_with=Username"`
}

var defaults = map[string]any{
	"app_env":              EnvDevelopment,
	"port":                 "8080",
	"read_timeout":         15,
	"write_timeout":        15,
	"idle_timeout":         60,
	"shutdown_timeout":     10,
	"cors_allowed_origins": "http://localhost:3000",
	"db_driver":            DriverMySQL,
	"sql_host":             "127.0.0.1",
	"db_auto_migrate":      true,
	"storage_backend":      BackendLocal,
	"upload_dir":           "./public/images",
	"upload_max_bytes":     int64(5 * 1024 * 1024),
}

// Load builds the Config from defaults overlaid with environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("could not set default %s: %w", key, err)
		}
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Storage.Backend == BackendDrive && cfg.Storage.CredentialsPath == "" && cfg.Storage.CredentialsJSON == "" {
		return nil, fmt.Errorf("config validation failed: GOOGLE_CREDENTIALS_PATH or GOOGLE_CREDENTIALS_JSON is required for the drive backend")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

func (s ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(s.CORSAllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration     { return seconds(s.ReadTimeout) }
func (s ServerConfig) WriteTimeoutDuration() time.Duration    { return seconds(s.WriteTimeout) }
func (s ServerConfig) IdleTimeoutDuration() time.Duration     { return seconds(s.IdleTimeout) }
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration { return seconds(s.ShutdownTimeout) }
