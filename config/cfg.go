package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/Sagaustus/spyral-translation/internal/api/http"
	"github.com/Sagaustus/spyral-translation/internal/apisrv/auth"
	"github.com/Sagaustus/spyral-translation/internal/exporter"
	"github.com/Sagaustus/spyral-translation/internal/ratelimit"
	"github.com/Sagaustus/spyral-translation/internal/staleaudit"
	"github.com/Sagaustus/spyral-translation/internal/store"
	"github.com/Sagaustus/spyral-translation/log"
	"github.com/spf13/viper"
)

// ExportConfig holds defaults for the export commands.
type ExportConfig struct {
	OutDir        string `mapstructure:"out_dir"`
	MissingMarker string `mapstructure:"missing_marker"`
	Concurrency   int    `mapstructure:"concurrency"`
}

// Config represents the global configuration for the service.
type Config struct {
	DB         store.Config      `mapstructure:"mysql"`
	Logger     log.Config        `mapstructure:"logger"`
	HTTP       httpapi.Config    `mapstructure:"http"`
	Auth       auth.Config       `mapstructure:"auth"`
	StaleAudit staleaudit.Config `mapstructure:"stale_audit"`
	Export     ExportConfig      `mapstructure:"export"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Env vars use underscores and uppercase, e.g., MYSQL_DSN, AUTH_JWT_SECRET
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	setDefaults(v)

	v.AutomaticEnv()
	// e.g., mysql.dsn -> MYSQL__DSN, auth.jwt_secret -> AUTH__JWT_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/spyral-translation")
		v.AddConfigPath("/etc/spyral-translation")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv()
	}

	return &config, nil
}

// dsnFromEnv builds a DSN from MYSQL_* variables when all of user, password
// and database are present.
func dsnFromEnv() string {
	mysqlHost := os.Getenv("MYSQL_HOST")
	mysqlPort := os.Getenv("MYSQL_PORT")
	mysqlUser := os.Getenv("MYSQL_USER")
	mysqlPassword := os.Getenv("MYSQL_PASSWORD")
	mysqlDatabase := os.Getenv("MYSQL_DATABASE")

	if mysqlHost == "" || mysqlUser == "" || mysqlPassword == "" || mysqlDatabase == "" {
		return ""
	}
	if mysqlPort == "" {
		mysqlPort = "3306"
	}
	params := "charset=utf8mb4&parseTime=true"
	if os.Getenv("MYSQL_TLS_CA_PATH") != "" {
		params += "&tls=custom"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase, params)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("logger.level", 0)
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.address", "0.0.0.0")

	loginLimit := ratelimit.DefaultLoginConfig()
	v.SetDefault("auth.jwt_ttl", "24h")
	v.SetDefault("auth.login_limit.per_ip", loginLimit.PerIP)
	v.SetDefault("auth.login_limit.per_username", loginLimit.PerUsername)
	v.SetDefault("auth.login_limit.window", loginLimit.Window)

	staleAudit := staleaudit.DefaultConfig()
	v.SetDefault("stale_audit.enabled", staleAudit.Enabled)
	v.SetDefault("stale_audit.worker_interval", staleAudit.WorkerInterval)

	v.SetDefault("export.out_dir", "exports")
	v.SetDefault("export.concurrency", exporter.DefaultConcurrency)
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// MySQL
	_ = v.BindEnv("mysql.dsn", "MYSQL_DSN")
	_ = v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	_ = v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	_ = v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	_ = v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	_ = v.BindEnv("logger.level", "LOG_LEVEL")
	_ = v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	_ = v.BindEnv("http.port", "HTTP_PORT")
	_ = v.BindEnv("http.address", "HTTP_ADDRESS")
	_ = v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	_ = v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")

	// Auth
	_ = v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	_ = v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")
	_ = v.BindEnv("auth.password_hash_cost", "AUTH_PASSWORD_HASH_COST")
	_ = v.BindEnv("auth.login_limit.per_ip", "AUTH_LOGIN_LIMIT_PER_IP")
	_ = v.BindEnv("auth.login_limit.per_username", "AUTH_LOGIN_LIMIT_PER_USERNAME")
	_ = v.BindEnv("auth.login_limit.window", "AUTH_LOGIN_LIMIT_WINDOW")

	// Stale audit
	_ = v.BindEnv("stale_audit.enabled", "STALE_AUDIT_ENABLED")
	_ = v.BindEnv("stale_audit.worker_interval", "STALE_AUDIT_WORKER_INTERVAL")
	_ = v.BindEnv("stale_audit.run_on_start", "STALE_AUDIT_RUN_ON_START")

	// Export
	_ = v.BindEnv("export.out_dir", "EXPORT_OUT_DIR")
	_ = v.BindEnv("export.missing_marker", "EXPORT_MISSING_MARKER")
	_ = v.BindEnv("export.concurrency", "EXPORT_CONCURRENCY")
}
