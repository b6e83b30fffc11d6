package database

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

// OpenPostgres puts gorm on top of an already connected pgx pool,
// so the pool stays the single owner of postgres connections.
func OpenPostgres(pool *pgxpool.Pool, logger zerolog.Logger, opts ...Option) (*gorm.DB, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)
	db, err := Open(postgres.New(postgres.Config{Conn: sqlDB}), logger, opts...)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func Open(dialector gorm.Dialector, logger zerolog.Logger, opts ...Option) (*gorm.DB, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewLogger(logger, o.slowQueryThreshold),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.User{}, &models.Task{})
	if err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	return sqlDB.Close()
}
