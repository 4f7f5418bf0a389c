// Package config loads the reconciler configuration: a YAML file for the
// stable settings and environment variables (optionally from a .env file)
// for database credentials.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultMaxDocumentBytes bounds the size of one uploaded dump.
const DefaultMaxDocumentBytes = 10 << 20

// Config is the application configuration.
type Config struct {
	// MappingFile replaces the built-in metric mapping table when set.
	MappingFile string `yaml:"mapping_file"`

	Log      LogConfig      `yaml:"log"`
	Ingest   IngestConfig   `yaml:"ingest"`
	TripsDB  DatabaseConfig `yaml:"trips_db"`
	TabletDB DatabaseConfig `yaml:"tablet_db"`
}

// LogConfig selects log verbosity and output format.
type LogConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=auto console json"`
}

// IngestConfig bounds ingestion work.
type IngestConfig struct {
	Workers          int   `yaml:"workers" validate:"gte=0"`
	MaxDocumentBytes int64 `yaml:"max_document_bytes" validate:"gte=0"`
}

// DatabaseConfig locates one MySQL schema.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port" validate:"omitempty,min=1,max=65535"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// Configured reports whether enough is set to open a connection.
func (d DatabaseConfig) Configured() bool {
	return d.Host != "" && d.Name != ""
}

// DSN returns the go-sql-driver/mysql data source name. Times are scanned
// as local wall-clock values, the way the tablet application writes them.
func (d DatabaseConfig) DSN() string {
	port := d.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		d.User, d.Password, d.Host, port, d.Name)
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "auto"},
		Ingest: IngestConfig{Workers: 4, MaxDocumentBytes: DefaultMaxDocumentBytes},
	}
}

// Load reads the YAML file at path over the defaults, loads envFiles (or
// ".env" when none are given) into the environment, applies the DB_* and
// LOG_LEVEL overrides and validates the result. An empty path skips the
// YAML file; a missing .env file is not an error.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load environment file: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyEnv overrides database settings from DB_HOST, DB_PORT, DB_USER,
// DB_PASS, DB_NAME and TABLET_DB_NAME. Both schemas live on the same server.
func (c *Config) applyEnv() error {
	for _, db := range []*DatabaseConfig{&c.TripsDB, &c.TabletDB} {
		setFromEnv(&db.Host, "DB_HOST")
		setFromEnv(&db.User, "DB_USER")
		setFromEnv(&db.Password, "DB_PASS")
		if v := strings.TrimSpace(os.Getenv("DB_PORT")); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid DB_PORT %q: %w", v, err)
			}
			db.Port = port
		}
	}
	setFromEnv(&c.TripsDB.Name, "DB_NAME")
	setFromEnv(&c.TabletDB.Name, "TABLET_DB_NAME")
	setFromEnv(&c.Log.Level, "LOG_LEVEL")
	setFromEnv(&c.Log.Format, "LOG_FORMAT")
	return nil
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}
