package db

import (
	"context"
	"time"

	"github.com/abiramijewels/aurum/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Open(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialect, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialect, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetime) * time.Minute)

	log.Info("database connected", zap.String("type", cfg.DBType), zap.String("name", cfg.DBName))
	return gdb, nil
}

func registerHooks(lc fx.Lifecycle, gdb *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}

var Module = fx.Module("db",
	fx.Provide(Open),
	fx.Invoke(registerHooks),
)
