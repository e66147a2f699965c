package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bistro/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Models lists every table the service owns, in drop-safe order.
func Models() []interface{} {
	return []interface{}{
		&model.Payment{},
		&model.CartItem{},
		&model.Review{},
		&model.MenuItem{},
		&model.User{},
	}
}

// Migrate creates or updates the schema. When reset is set every table is dropped first.
func Migrate(db *gorm.DB, reset bool, log logrus.FieldLogger) error {
	if reset {
		log.Warn("RESET_DB=true detected, dropping all tables")
		for _, table := range Models() {
			if err := db.Migrator().DropTable(table); err != nil {
				log.WithError(err).Warn("failed to drop table (may not exist)")
			}
		}
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
