package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Upstream  UpstreamConfig  `mapstructure:"upstream"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Audit     AuditConfig     `mapstructure:"audit"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Mode     string `mapstructure:"mode"` // debug, release, test
	SpecPath string `mapstructure:"spec_path"`
}

// Endpoint is a single configured upstream URL.
type Endpoint struct {
	URL string `mapstructure:"url"`
}

// UpstreamConfig describes the payment-reporting API this service fronts.
type UpstreamConfig struct {
	Login  Endpoint `mapstructure:"login"`
	Info   Endpoint `mapstructure:"info"`
	Report Endpoint `mapstructure:"report"`
	Client Endpoint `mapstructure:"client"`
	// Timeout bounds a single outbound call, including reading the body.
	Timeout time.Duration `mapstructure:"timeout"`
	// AuthScheme prefixes the token in the Authorization header.
	// Empty sends the raw token.
	AuthScheme string `mapstructure:"auth_scheme"`
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type AuditConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	FingerprintKey string `mapstructure:"fingerprint_key"` // keys the BLAKE2b actor fingerprint
}

type RateLimitConfig struct {
	LoginLimit  int64         `mapstructure:"login_limit"`
	LoginWindow time.Duration `mapstructure:"login_window"`
	APILimit    int64         `mapstructure:"api_limit"`
	APIWindow   time.Duration `mapstructure:"api_window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// AppName identifies this service to Redis and PostgreSQL connections.
const AppName = "merchant-reporting-bff"

const sandboxBaseURL = "https://sandbox-reporting.rpdpymnt.com/api/v3"

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BFF_.
// Nested keys use underscore: BFF_UPSTREAM_TIMEOUT, BFF_REDIS_ENABLED, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.spec_path", "docs/api/openapi.yaml")
	v.SetDefault("upstream.login.url", sandboxBaseURL+"/merchant/user/login")
	v.SetDefault("upstream.info.url", sandboxBaseURL+"/merchant/user/show")
	v.SetDefault("upstream.report.url", sandboxBaseURL+"/transactions/report")
	v.SetDefault("upstream.client.url", sandboxBaseURL+"/client")
	v.SetDefault("upstream.timeout", "30s")
	v.SetDefault("upstream.auth_scheme", "Bearer")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "reporting_bff")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("audit.enabled", true)
	v.SetDefault("audit.fingerprint_key", "")
	v.SetDefault("ratelimit.login_limit", 10)
	v.SetDefault("ratelimit.login_window", "1m")
	v.SetDefault("ratelimit.api_limit", 60)
	v.SetDefault("ratelimit.api_window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: BFF_UPSTREAM_LOGIN_URL -> upstream.login.url
	v.SetEnvPrefix("BFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	var errs []error
	for name, ep := range map[string]Endpoint{
		"upstream.login.url":  c.Upstream.Login,
		"upstream.info.url":   c.Upstream.Info,
		"upstream.report.url": c.Upstream.Report,
		"upstream.client.url": c.Upstream.Client,
	} {
		if strings.TrimSpace(ep.URL) == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}
	if c.Upstream.Timeout <= 0 {
		errs = append(errs, errors.New("upstream.timeout must be positive"))
	}
	return errors.Join(errs...)
}
