package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV", EnvLocal)
	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_USERNAME", "tasks")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DATABASE", "tasks")
	t.Setenv("JWT_SIGNING_KEY", "signing-key")
}

func TestEnvReader_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.True(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, 200*time.Millisecond, cfg.Postgres.SlowQueryThreshold)
	assert.Equal(t, "go-task-manager", cfg.JWT.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
}

func TestEnvReader_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:4200,https://tasks.example.com")
	t.Setenv("POSTGRES_AUTO_MIGRATE", "false")
	t.Setenv("JWT_ACCESS_TOKEN_TTL", "15m")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:4200", "https://tasks.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.False(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenTTL)
}

func TestEnvReader_MissingSigningKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SIGNING_KEY", "")
	require.NoError(t, os.Unsetenv("JWT_SIGNING_KEY"))

	cfg, err := NewEnvReader().Read()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestFileReader_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := `ENV=dev
POSTGRES_HOST=db
POSTGRES_USERNAME=tasks
POSTGRES_PASSWORD=secret
POSTGRES_DATABASE=tasks
JWT_SIGNING_KEY=file-key
HTTP_PORT=8181
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// Loading a .env file exports its keys; register them so they are restored.
	for _, key := range []string{
		"ENV", "POSTGRES_HOST", "POSTGRES_USERNAME", "POSTGRES_PASSWORD",
		"POSTGRES_DATABASE", "JWT_SIGNING_KEY", "HTTP_PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := NewFileReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.Equal(t, "8181", cfg.HTTP.Port)
	assert.Equal(t, "file-key", cfg.JWT.SigningKey)
}

func TestFileReader_MissingFile(t *testing.T) {
	cfg, err := NewFileReader(filepath.Join(t.TempDir(), "missing.env")).Read()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestFileReader_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `env: prod
http:
  port: "8282"
postgres:
  host: db
  username: tasks
  password: secret
  database: tasks
jwt:
  signingkey: yaml-key
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// Any of these set in the environment would win over the file.
	for _, key := range []string{
		"ENV", "HTTP_PORT", "POSTGRES_HOST", "POSTGRES_USERNAME",
		"POSTGRES_PASSWORD", "POSTGRES_DATABASE", "JWT_SIGNING_KEY",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("JWT_ISSUER", "from-env")

	cfg, err := NewFileReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, "8282", cfg.HTTP.Port)
	assert.Equal(t, "db", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "yaml-key", cfg.JWT.SigningKey)
	assert.Equal(t, "from-env", cfg.JWT.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
}
