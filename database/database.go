package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/incentra-dev/incentra/monitoring"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// alertingLogger forwards database errors to the error tracking in addition
// to the default gorm logging.
type alertingLogger struct {
	defaultLogger logger.Interface
}

func (l *alertingLogger) LogMode(level logger.LogLevel) logger.Interface {
	var newDefault logger.Interface
	if l.defaultLogger != nil {
		newDefault = l.defaultLogger.LogMode(level)
	}
	return &alertingLogger{defaultLogger: newDefault}
}

func (l *alertingLogger) Info(ctx context.Context, msg string, data ...any) {
	l.defaultLogger.Info(ctx, msg, data...)
}

func (l *alertingLogger) Warn(ctx context.Context, msg string, data ...any) {
	l.defaultLogger.Warn(ctx, msg, data...)
}

func (l *alertingLogger) Error(ctx context.Context, msg string, data ...any) {
	l.alert(msg, data...)
	l.defaultLogger.Error(ctx, msg, data...)
}

func (l *alertingLogger) alert(msg string, data ...any) {
	if len(data) > 0 {
		err, ok := data[0].(error)
		if ok {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return
			}
			monitoring.Alert(msg, err)
		} else {
			monitoring.Alert(msg, fmt.Errorf("%v", data[0]))
		}
	} else {
		monitoring.Alert(msg, nil)
	}
}

func (l *alertingLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !IsDuplicateKeyError(err) {
		l.alert("database error", err)
	}
	l.defaultLogger.Trace(ctx, begin, fc, err)
}

func getDSN(host, user, password, dbname, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

func NewPgxConnPool(cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(getDSN(cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port))
	if err != nil {
		return nil, fmt.Errorf("could not parse pgx pool config: %w", err)
	}
	config.MaxConnIdleTime = cfg.ConnMaxIdleTime
	config.MaxConnLifetime = cfg.ConnMaxLifetime
	config.MaxConns = cfg.MaxOpenConns
	config.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	slog.Info("database connection pool configured",
		"maxOpenConns", cfg.MaxOpenConns,
		"connMaxLifetime", cfg.ConnMaxLifetime,
		"connMaxIdleTime", cfg.ConnMaxIdleTime,
	)

	return pool, nil
}

// NewGormDB creates a GORM instance on top of an existing *pgxpool.Pool.
func NewGormDB(existingPool *pgxpool.Pool) (*gorm.DB, error) {
	db := stdlib.OpenDBFromPool(existingPool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: &alertingLogger{
			defaultLogger: logger.Default,
		},
	})
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

// NewConnection wires a pgx pool and a GORM instance from plain parameters.
func NewConnection(host, user, password, dbname, port string) (*gorm.DB, error) {
	cfg := GetPoolConfigFromEnv()
	cfg.Host = host
	cfg.User = user
	cfg.Password = password
	cfg.DBName = dbname
	cfg.Port = port

	pool, err := NewPgxConnPool(cfg)
	if err != nil {
		return nil, err
	}
	return NewGormDB(pool)
}

func IsDuplicateKeyError(err error) bool {
	return strings.HasPrefix(err.Error(), "ERROR: duplicate key value violates unique constraint")
}
