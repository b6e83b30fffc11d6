package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

type loggerImpl struct {
	logger             zerolog.Logger
	level              gormlogger.LogLevel
	slowQueryThreshold time.Duration
}

// NewLogger routes gorm's output through zerolog. SQL statements are
// traced at debug level, so they only show up outside of prod.
func NewLogger(logger zerolog.Logger, slowQueryThreshold time.Duration) gormlogger.Interface {
	return &loggerImpl{
		logger:             logger.With().Str("component", "gorm").Logger(),
		level:              gormlogger.Warn,
		slowQueryThreshold: slowQueryThreshold,
	}
}

func (l *loggerImpl) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *loggerImpl) Info(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.logger.Info().Msg(fmt.Sprintf(msg, args...))
	}
}

func (l *loggerImpl) Warn(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.Warn().Msg(fmt.Sprintf(msg, args...))
	}
}

func (l *loggerImpl) Error(_ context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.logger.Error().Msg(fmt.Sprintf(msg, args...))
	}
}

func (l *loggerImpl) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gormlogger.ErrRecordNotFound) && l.level >= gormlogger.Error:
		query, rows := fc()
		l.logger.Error().
			Err(err).
			Str("query", query).
			Int64("rows", rows).
			Dur("elapsed", elapsed).
			Msg("query failed")
	case l.slowQueryThreshold > 0 && elapsed > l.slowQueryThreshold && l.level >= gormlogger.Warn:
		query, rows := fc()
		l.logger.Warn().
			Str("query", query).
			Int64("rows", rows).
			Dur("elapsed", elapsed).
			Dur("threshold", l.slowQueryThreshold).
			Msg("slow query")
	default:
		event := l.logger.Debug()
		if !event.Enabled() {
			return
		}
		query, rows := fc()
		event.
			Str("query", query).
			Int64("rows", rows).
			Dur("elapsed", elapsed).
			Msg("query")
	}
}
