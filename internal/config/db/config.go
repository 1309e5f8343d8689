package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // регистрируем pgx драйвер для database/sql
)

// Config содержит настройки подключения к базе данных
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// NewConfig создает конфигурацию подключения к БД
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   time.Minute * 30,
		HealthCheckPeriod: time.Minute,
	}
}

// Database интерфейс для работы с базой данных
type Database interface {
	Ping(ctx context.Context) error
	Close()
	// DB возвращает *sql.DB для миграций
	DB() *sql.DB
}

// Connect создает пул подключений к PostgreSQL
func (c *Config) Connect(ctx context.Context) (*Adapter, error) {
	if c.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	// sql.DB с pgx драйвером нужен golang-migrate
	sqlDB, err := sql.Open("pgx", c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open sql database: %w", err)
	}

	sqlDB.SetMaxOpenConns(int(c.MaxConns))
	sqlDB.SetMaxIdleConns(int(c.MinConns))
	sqlDB.SetConnMaxLifetime(c.MaxConnLifetime)
	sqlDB.SetConnMaxIdleTime(c.MaxConnIdleTime)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = c.MaxConns
	poolConfig.MinConns = c.MinConns
	poolConfig.MaxConnLifetime = c.MaxConnLifetime
	poolConfig.MaxConnIdleTime = c.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = c.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewAdapter(pool, sqlDB), nil
}

// Adapter связывает pgxpool.Pool и *sql.DB под интерфейсом Database
type Adapter struct {
	Pool  *pgxpool.Pool
	SQLDB *sql.DB
}

// NewAdapter создает новый адаптер
func NewAdapter(pool *pgxpool.Pool, sqlDB *sql.DB) *Adapter {
	return &Adapter{
		Pool:  pool,
		SQLDB: sqlDB,
	}
}

// Ping проверяет подключение
func (a *Adapter) Ping(ctx context.Context) error {
	return a.Pool.Ping(ctx)
}

// Close закрывает соединения
func (a *Adapter) Close() {
	a.Pool.Close()
	if a.SQLDB != nil {
		a.SQLDB.Close()
	}
}

// DB возвращает *sql.DB
func (a *Adapter) DB() *sql.DB {
	return a.SQLDB
}
