package repository

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// OpenDatabase connects to the identity and favorites store and migrates its schema
func OpenDatabase(driver, dsn string, log hclog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(
			log.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true}),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("Database ready", "driver", driver)
	return db, nil
}

// Migrate creates or updates the users and favorites tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userRecord{}, &favoriteRecord{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// CloseDatabase releases the underlying connection pool
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
