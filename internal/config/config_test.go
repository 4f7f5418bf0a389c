package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME", "TABLET_DB_NAME", "LOG_LEVEL", "LOG_FORMAT"}

// clearEnv unsets the override variables; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 4, cfg.Ingest.Workers)
	assert.Equal(t, int64(DefaultMaxDocumentBytes), cfg.Ingest.MaxDocumentBytes)
	assert.False(t, cfg.TripsDB.Configured())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yml", `
mapping_file: mapping.yml
log:
  level: debug
  format: json
ingest:
  workers: 8
trips_db:
  host: db.internal
  name: grupoam6_trips
tablet_db:
  host: db.internal
  name: grupoam6_diesel
`)
	env := writeFile(t, "test.env", "DB_USER=reports\nDB_PASS=s3cret\nDB_PORT=3307\nTABLET_DB_NAME=diesel_test\n")

	cfg, err := Load(path, env)
	require.NoError(t, err)

	assert.Equal(t, "mapping.yml", cfg.MappingFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Ingest.Workers)
	assert.Equal(t, int64(DefaultMaxDocumentBytes), cfg.Ingest.MaxDocumentBytes)

	assert.Equal(t, "reports:s3cret@tcp(db.internal:3307)/grupoam6_trips?charset=utf8mb4&parseTime=true&loc=Local", cfg.TripsDB.DSN())
	assert.Equal(t, "diesel_test", cfg.TabletDB.Name)
	assert.True(t, cfg.TabletDB.Configured())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{name: "unknown log level", yaml: "log:\n  level: loud\n"},
		{name: "negative workers", yaml: "ingest:\n  workers: -1\n"},
		{name: "port out of range", yaml: "trips_db:\n  port: 70000\n"},
		{name: "not yaml", yaml: "log: [\n"},
		{name: "bad port in environment", yaml: "", env: map[string]string{"DB_PORT": "mysql"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeFile(t, "config.yml", tt.yaml), filepath.Join(t.TempDir(), "absent.env"))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSNDefaultPort(t *testing.T) {
	db := DatabaseConfig{Host: "localhost", User: "root", Name: "trips"}
	assert.Equal(t, "root:@tcp(localhost:3306)/trips?charset=utf8mb4&parseTime=true&loc=Local", db.DSN())
}
