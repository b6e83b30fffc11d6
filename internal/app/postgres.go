package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-manager/internal/config"
	"github.com/adanyl0v/go-task-manager/internal/database"
)

var (
	globalPostgresPool *pgxpool.Pool
	globalDB           *gorm.DB
)

func MustConnectPostgres() {
	cfg := config.Global().Postgres
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Username, cfg.Password, cfg.Host,
		cfg.Port, cfg.Database, cfg.SSLMode)

	poolCfg, err := pgxpool.ParseConfig(connURL)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		panic(err)
	}
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	globalPostgresPool, err = pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to connect to postgres")
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	err = globalPostgresPool.Ping(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to ping postgres")
		panic(err)
	}
	globalLogger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("connected to postgres")

	globalDB, err = database.OpenPostgres(
		globalPostgresPool,
		globalLogger,
		database.WithSlowQueryThreshold(cfg.SlowQueryThreshold),
	)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to open gorm")
		panic(err)
	}

	if cfg.AutoMigrate {
		err = database.Migrate(globalDB)
		if err != nil {
			globalLogger.Error().
				Err(err).
				Msg("failed to migrate postgres")
			panic(err)
		}
		globalLogger.Info().Msg("migrated postgres")
	}
}

func DisconnectPostgres() {
	err := database.Close(globalDB)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close gorm")
	}
	globalPostgresPool.Close()
	globalLogger.Info().Msg("disconnected from postgres")
}
