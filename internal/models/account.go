package models

type Account struct {
	Username string `gorm:"primaryKey"`
	Password string `gorm:"not null"`
}
