package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// GormConfig places every table in the dbName schema when dbName is set.
func GormConfig(dbName string) *gorm.Config {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	if dbName != "" {
		cfg.NamingStrategy = schema.NamingStrategy{TablePrefix: dbName + "."}
	}
	return cfg
}

// Connect opens the postgres handle shared by every repository. When dbName is
// set the tables live in a schema of that name, created on first start.
func Connect(ctx context.Context, dsn, dbName string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), GormConfig(dbName))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if dbName != "" {
		stmt := fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %q", dbName)
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return nil, fmt.Errorf("create schema %s: %w", dbName, err)
		}
	}

	Logger.Info("Connected to postgres")
	return db, nil
}

func ConnectRedis(ctx context.Context, s *Settings) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     s.Redis.Addr,
		Password: s.Redis.Password,
		DB:       s.Redis.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", s.Redis.Addr, err)
	}

	Logger.WithField("addr", s.Redis.Addr).Info("Connected to redis")
	return rdb, nil
}
