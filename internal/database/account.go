package database

import (
	"errors"
	"fmt"

	"github.com/thereayou/courier-lite/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateAccount(account *models.Account) error {
	if err := d.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountExists
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (d *Database) GetAccount(username string) (*models.Account, error) {
	account := models.Account{}
	if err := d.db.First(&account, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &account, nil
}

// RenameAccount replaces the username and password in a single UPDATE.
// The username column is the primary key, so a rename onto a taken name
// is refused by the engine and reported as ErrAccountExists.
func (d *Database) RenameAccount(oldUsername, newUsername, newPassword string) error {
	tx := d.db.Model(&models.Account{}).
		Where("username = ?", oldUsername).
		Updates(map[string]interface{}{"username": newUsername, "password": newPassword})
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return ErrAccountExists
		}
		return fmt.Errorf("rename account: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (d *Database) ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	if err := d.db.Order("username ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}
