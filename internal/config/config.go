package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Auth       AuthConfig       `validate:"required"`
	Session    SessionConfig    `validate:"required"`
	Sentry     SentryConfig
	Cache      CacheConfig
	Storage    StorageConfig
	Profiling  ProfilingConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `mapstructure:"mode" validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
	// AllowedOrigins lists the dashboard origins that may send credentialed
	// requests; "*" allows any origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required"`
}

type PostgresConfig struct {
	Host                   string `mapstructure:"host" validate:"required"`
	Port                   int    `mapstructure:"port" validate:"required"`
	User                   string `mapstructure:"user" validate:"required"`
	Password               string `mapstructure:"password"`
	DBName                 string `mapstructure:"dbname" validate:"required"`
	SSLMode                string `mapstructure:"sslmode"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes"`
	// ConnectRetries bounds the startup connection attempts
	ConnectRetries uint64 `mapstructure:"connect_retries"`
}

type AuthConfig struct {
	Provider types.AuthProvider `mapstructure:"provider" validate:"required,oneof=supabase local"`
	// Secret verifies bearer tokens: the Supabase JWT secret, or the signing
	// key of the local provider
	Secret         string               `mapstructure:"secret" validate:"required"`
	Supabase       SupabaseConfig       `mapstructure:"supabase"`
	Local          LocalAuthConfig      `mapstructure:"local"`
	LoginRateLimit LoginRateLimitConfig `mapstructure:"login_rate_limit"`
}

type SupabaseConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	ServiceKey string `mapstructure:"service_key"`
}

// LocalAuthConfig describes the single operator account of the local provider
type LocalAuthConfig struct {
	UserID       string        `mapstructure:"user_id"`
	Email        string        `mapstructure:"email"`
	PasswordHash string        `mapstructure:"password_hash"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

type LoginRateLimitConfig struct {
	// RequestsPerMinute per client IP; zero disables the limiter
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
}

type SessionConfig struct {
	CookieName string        `mapstructure:"cookie_name" validate:"required"`
	Secret     string        `mapstructure:"secret" validate:"required,min=32"`
	MaxAge     time.Duration `mapstructure:"max_age" validate:"required"`
	Secure     bool          `mapstructure:"secure"`
	Domain     string        `mapstructure:"domain"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type StorageConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	KeyPrefix     string `mapstructure:"key_prefix"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	// MaxUploadBytes caps image uploads
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

// ProfilingConfig points continuous profiling at a Pyroscope server
type ProfilingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	ServerAddress     string `mapstructure:"server_address"`
	ApplicationName   string `mapstructure:"application_name"`
	BasicAuthUser     string `mapstructure:"basic_auth_user"`
	BasicAuthPassword string `mapstructure:"basic_auth_password"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/clubadmin")

	v.SetEnvPrefix("CLUBADMIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every key so AutomaticEnv can override keys the
// config file leaves out
func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("logging.level", types.LogLevelInfo)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.dbname", "postgres")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.max_idle_conns", 5)
	v.SetDefault("postgres.conn_max_lifetime_minutes", 60)
	v.SetDefault("postgres.connect_retries", 5)

	v.SetDefault("auth.provider", types.AuthProviderSupabase)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.supabase.base_url", "")
	v.SetDefault("auth.supabase.service_key", "")
	v.SetDefault("auth.local.user_id", types.DefaultUserID)
	v.SetDefault("auth.local.email", "")
	v.SetDefault("auth.local.password_hash", "")
	v.SetDefault("auth.local.token_ttl", 12*time.Hour)
	v.SetDefault("auth.login_rate_limit.requests_per_minute", 10)
	v.SetDefault("auth.login_rate_limit.burst", 5)

	v.SetDefault("session.cookie_name", "active_organization")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.max_age", 30*24*time.Hour)
	v.SetDefault("session.secure", true)
	v.SetDefault("session.domain", "")

	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
	v.SetDefault("sentry.sample_rate", 1.0)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", 5*time.Minute)

	v.SetDefault("storage.enabled", false)
	v.SetDefault("storage.region", "")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.key_prefix", "uploads")
	v.SetDefault("storage.public_base_url", "")
	v.SetDefault("storage.max_upload_bytes", 5<<20)

	v.SetDefault("profiling.enabled", false)
	v.SetDefault("profiling.server_address", "http://localhost:4040")
	v.SetDefault("profiling.application_name", "clubadmin.api")
	v.SetDefault("profiling.basic_auth_user", "")
	v.SetDefault("profiling.basic_auth_password", "")
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	switch c.Auth.Provider {
	case types.AuthProviderSupabase:
		if c.Auth.Supabase.BaseURL == "" || c.Auth.Supabase.ServiceKey == "" {
			return fmt.Errorf("auth.supabase.base_url and auth.supabase.service_key are required for the supabase provider")
		}
	case types.AuthProviderLocal:
		if c.Auth.Local.Email == "" || c.Auth.Local.PasswordHash == "" {
			return fmt.Errorf("auth.local.email and auth.local.password_hash are required for the local provider")
		}
	}

	if c.Storage.Enabled && (c.Storage.Bucket == "" || c.Storage.PublicBaseURL == "") {
		return fmt.Errorf("storage.bucket and storage.public_base_url are required when storage is enabled")
	}
	if c.Profiling.Enabled && c.Profiling.ServerAddress == "" {
		return fmt.Errorf("profiling.server_address is required when profiling is enabled")
	}
	return nil
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Session: SessionConfig{
			CookieName: "active_organization",
			MaxAge:     30 * 24 * time.Hour,
		},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
