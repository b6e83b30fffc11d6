package app

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-task-manager/internal/config"
)

// MustReadConfig reads the environment, or the file named by
// CONFIG_PATH when it is set.
func MustReadConfig() {
	var reader config.Reader = config.NewEnvReader()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		reader = config.NewFileReader(path)
	}

	cfg, err := reader.Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read config")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Msg("read config")

	config.SetGlobal(cfg)
}
