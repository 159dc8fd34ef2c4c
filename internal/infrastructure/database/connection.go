package database

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nhadat/marketplace/internal/shared/config"
	"github.com/nhadat/marketplace/internal/shared/logger"
)

var (
	mu      sync.RWMutex
	current *gorm.DB
)

// Init opens the MySQL pool shared by every command. Timestamps are written
// in UTC; conversion to local time happens only when rendering.
func Init(cfg *config.DatabaseConfig) error {
	conn, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       cfg.DSN(),
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:      queryLogger(time.Duration(cfg.SlowQueryMillis) * time.Millisecond),
		PrepareStmt: true,
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}

	pool, err := conn.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := pool.Ping(); err != nil {
		return fmt.Errorf("ping mysql at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	mu.Lock()
	current = conn
	mu.Unlock()

	logger.Info("mysql connected", "database", cfg.Database, "max_open", cfg.MaxOpenConns)
	return nil
}

// Get returns the pool opened by Init, or nil.
func Get() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Close releases the pool. Calling it twice is harmless.
func Close() error {
	mu.Lock()
	conn := current
	current = nil
	mu.Unlock()

	if conn == nil {
		return nil
	}
	pool, err := conn.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("close mysql: %w", err)
	}
	logger.Info("mysql connection closed")
	return nil
}

func queryLogger(slow time.Duration) gormlogger.Interface {
	if slow <= 0 {
		slow = 200 * time.Millisecond
	}
	return gormlogger.New(gormSink{}, gormlogger.Config{
		SlowThreshold:             slow,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// gormSink forwards gorm's printf-style output to the structured logger.
type gormSink struct{}

func (gormSink) Printf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	switch lower := strings.ToLower(line); {
	case strings.Contains(lower, "slow sql"):
		logger.Warn("slow query", "details", line)
	case strings.Contains(lower, "error"):
		logger.Error("query failed", "details", line)
	default:
		logger.Debug("query", "details", line)
	}
}
