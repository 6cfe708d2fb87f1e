package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/justsurfingit/actuarial-job-board/internal/config"
	"github.com/justsurfingit/actuarial-job-board/internal/models"
)

// Connect opens the store and runs migrations. The handle is returned to the
// caller instead of being kept in a package global so every operation gets
// its connection passed in explicitly.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{}
	if cfg.Debug {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// AutoMigrate is idempotent: the jobs table is created on first start and
	// left alone afterwards.
	if err := db.AutoMigrate(&models.JobPosting{}); err != nil {
		return nil, fmt.Errorf("migrate jobs table: %w", err)
	}
	return db, nil
}
