package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[mysql]
dsn = "user:pass@tcp(localhost:3306)/l10n?parseTime=true"
automigrate = false

[logger]
level = -4

[http]
port = "9090"
allowed_origins = ["https://l10n.example.org"]

[auth]
jwt_secret = "from-file"

[stale_audit]
worker_interval = "30m"
run_on_start = true
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, "user:pass@tcp(localhost:3306)/l10n?parseTime=true", cfg.DB.DSN)
	assert.False(t, cfg.DB.Automigrate)
	assert.Equal(t, -4, cfg.Logger.Level)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Address)
	assert.Equal(t, []string{"https://l10n.example.org"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "24h", cfg.Auth.JWTTTL)
	assert.Equal(t, 20, cfg.Auth.LoginLimit.PerIP)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LoginLimit.Window)
	assert.True(t, cfg.StaleAudit.Enabled)
	assert.Equal(t, 30*time.Minute, cfg.StaleAudit.WorkerInterval)
	assert.True(t, cfg.StaleAudit.RunOnStart)
	assert.Equal(t, "exports", cfg.Export.OutDir)
	assert.Equal(t, 4, cfg.Export.Concurrency)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "from-env")
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("STALE_AUDIT_ENABLED", "false")

	cfg, err := LoadConfig(writeConfig(t, sample))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "7070", cfg.HTTP.Port)
	assert.False(t, cfg.StaleAudit.Enabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "only-env")
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "only-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "8080", cfg.HTTP.Port)
}

func TestDSNFromEnv(t *testing.T) {
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("MYSQL_USER", "l10n")
	t.Setenv("MYSQL_PASSWORD", "secret")
	t.Setenv("MYSQL_DATABASE", "voyant")
	t.Setenv("MYSQL_PORT", "")
	t.Setenv("MYSQL_TLS_CA_PATH", "")

	assert.Equal(t, "l10n:secret@tcp(db.internal:3306)/voyant?charset=utf8mb4&parseTime=true", dsnFromEnv())

	t.Setenv("MYSQL_TLS_CA_PATH", "/etc/ssl/ca.pem")
	assert.Equal(t, "l10n:secret@tcp(db.internal:3306)/voyant?charset=utf8mb4&parseTime=true&tls=custom", dsnFromEnv())

	t.Setenv("MYSQL_PASSWORD", "")
	assert.Empty(t, dsnFromEnv())
}
