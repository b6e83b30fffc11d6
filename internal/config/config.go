package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	HTTP     HTTPConfig
	Postgres PostgresConfig
	JWT      JWTConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	// "*" allows any origin.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type PostgresConfig struct {
	Host               string        `env:"POSTGRES_HOST" env-required:"true"`
	Port               int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username           string        `env:"POSTGRES_USERNAME" env-required:"true"`
	Password           string        `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database           string        `env:"POSTGRES_DATABASE" env-required:"true"`
	SSLMode            string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout     time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout        time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
	AutoMigrate        bool          `env:"POSTGRES_AUTO_MIGRATE" env-default:"true"`
	SlowQueryThreshold time.Duration `env:"POSTGRES_SLOW_QUERY_THRESHOLD" env-default:"200ms"`
}

type JWTConfig struct {
	Issuer         string        `env:"JWT_ISSUER" env-default:"go-task-manager"`
	SigningKey     string        `env:"JWT_SIGNING_KEY" env-required:"true"`
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"24h"`
}
