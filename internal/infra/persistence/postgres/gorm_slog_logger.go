package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"herenow/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Queries slower than this are logged at warn level.
const slowQueryThreshold = 200 * time.Millisecond

// slogGormLogger adapts gorm's logger.Interface onto the application's slog
// logger. Record-not-found is not treated as an error: repositories translate
// it into their own sentinels.
type slogGormLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &slogGormLogger{
		base:          baseLogger,
		level:         level,
		slowThreshold: slowQueryThreshold,
	}
}

func (l *slogGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level

	return &clone
}

func (l *slogGormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *slogGormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *slogGormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *slogGormLogger) logf(ctx context.Context, gate logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.base == nil || l.level < gate {
		return
	}

	l.base.LogAttrs(ctx, level, "database: "+fmt.Sprintf(msg, args...))
}

func (l *slogGormLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := sqlAndRows()
		l.base.LogAttrs(ctx, slog.LevelError, "database query failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		sql, rows := sqlAndRows()
		l.base.LogAttrs(ctx, slog.LevelWarn, "slow database query",
			slog.Duration("threshold", l.slowThreshold),
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case l.level >= logger.Info:
		sql, rows := sqlAndRows()
		l.base.LogAttrs(ctx, slog.LevelInfo, "database query",
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	}
}
