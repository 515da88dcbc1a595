package model

import (
	"time"
)

// UserAccount represents the database model for registered accounts
type UserAccount struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"size:120;not null;uniqueIndex:idx_user_accounts_email"`
	Username     string    `gorm:"size:80;not null;uniqueIndex:idx_user_accounts_username"`
	PasswordHash string    `gorm:"size:255;not null"`
	FullName     string    `gorm:"size:120;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserAccount
func (UserAccount) TableName() string {
	return "user_accounts"
}
