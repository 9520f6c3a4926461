package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM's logging through the application Logger.
// Expected misses and duplicate keys are reported to callers as errors, not logged.
type gormLogger struct {
	log   logger.Logger
	level gormlogger.LogLevel
}

// NewGormLogger creates a GORM logger at warn level
func NewGormLogger(log logger.Logger) gormlogger.Interface {
	return &gormLogger{log: log, level: gormlogger.Warn}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &gormLogger{log: l.log, level: level}
}

func (l *gormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if len(data) > 0 {
		if err, ok := data[len(data)-1].(error); ok && isExpected(err) {
			return
		}
	}
	if l.level >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !isExpected(err):
		sql, rows := fc()
		l.log.Error("query failed", "error", err.Error(), "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql", sql)
	case elapsed > slowQueryThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warn("slow query", "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql", sql)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.log.Debug("query", "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql", sql)
	}
}

func isExpected(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, gorm.ErrDuplicatedKey)
}
