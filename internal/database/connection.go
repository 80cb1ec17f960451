package database

import (
	"errors"
	"os"

	"github.com/thereayou/courier-lite/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func (d *Database) Connect() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	// TranslateError turns driver-specific unique violations into
	// gorm.ErrDuplicatedKey, which the account store relies on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	d.db = db

	return d.Migrate()
}

func (d *Database) Migrate() error {
	return d.db.AutoMigrate(&models.Account{}, &models.Message{})
}
