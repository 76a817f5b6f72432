package cmd

import (
	"fmt"

	"stock-counter/core/config"
	"stock-counter/core/database"
	"stock-counter/core/logger"
	"stock-counter/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, l, nil
}

// openStore connects to the database and makes sure the schema exists.
func openStore(cfg database.Config, l *zap.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := models.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	l.Info("Connected to stock database",
		zap.String("driver", cfg.Driver),
		zap.String("name", cfg.Name))
	return db, nil
}
