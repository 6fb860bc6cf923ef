package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_YAMLAndDefaults(t *testing.T) {
	path := writeConfig(t, "JWT_SECRET: secret\nDB_NAME: foodgram\nPAGE_SIZE: 10\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, "foodgram", cfg.DBName)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, cfg, GetConfig())
}

func TestLoadConfig_EnvironmentOverridesYAML(t *testing.T) {
	path := writeConfig(t, "JWT_SECRET: secret\nDB_HOST: db.local\n")
	t.Setenv("DB_HOST", "override.local")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "override.local", cfg.DBHost)
}

func TestLoadConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWTSecret)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	path := writeConfig(t, "DB_NAME: foodgram\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBHost: "h", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "1", DBTimeZone: "UTC"}

	assert.Equal(t, "host=h user=u password=p dbname=n port=1 sslmode=disable TimeZone=UTC", cfg.DSN())
}
