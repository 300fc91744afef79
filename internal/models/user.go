package models

import (
	"strings"

	"gorm.io/gorm"
)

// User represents a person using the ledger. All categories
// and transactions belong to exactly one user.
type User struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

// BeforeSave normalizes the email address.
//
// Emails are compared case-insensitively, so they are stored lowercased.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// Categories returns all categories of the user in stable order.
//
// The stable order is the insertion order, with the ID as a tie
// breaker for categories created in the same instant.
func (u User) Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category

	err := db.
		Where(&Category{UserID: u.ID}).
		Order("created_at ASC, id ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
