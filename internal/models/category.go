package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a category that transactions are filed under.
type Category struct {
	DefaultModel
	User   User      `json:"-"`
	UserID uuid.UUID `gorm:"uniqueIndex:category_user_name"`
	Name   string    `gorm:"uniqueIndex:category_user_name"`
	Icon   string
	Color  string
	Kind   TransactionKind
}

// BeforeSave trims whitespace from all strings.
func (category *Category) BeforeSave(_ *gorm.DB) error {
	category.Name = strings.TrimSpace(category.Name)
	category.Icon = strings.TrimSpace(category.Icon)
	category.Color = strings.TrimSpace(category.Color)

	return nil
}

func (category *Category) BeforeCreate(tx *gorm.DB) error {
	_ = category.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return category.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the category before
// committing an update to the database.
func (category *Category) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Category)
	if tx.Statement.Changed("UserID") {
		err := category.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// BeforeDelete blocks the deletion of a category that is still referenced
// by transactions. Transactions keep their category reference, there is
// no cascade.
func (category *Category) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Transaction{}).
		Where("category_id = ?", category.ID).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrCategoryReferenced
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (category *Category) checkIntegrity(tx *gorm.DB, toSave Category) error {
	return tx.First(&User{}, toSave.UserID).Error
}

// Transactions returns all transactions filed under this category.
func (category Category) Transactions(db *gorm.DB) []Transaction {
	var transactions []Transaction

	db.Where(&Transaction{CategoryID: &category.ID}).Find(&transactions)
	return transactions
}

// FallbackPolicy decides which category a transaction is filed under when
// the requested category name does not match any of the user's categories.
type FallbackPolicy interface {
	Fallback(db *gorm.DB, userID uuid.UUID) (Category, error)
}

// FallbackFirstByStableOrder picks the user's first category in insertion
// order. Ingestion never blocks on a miscategorized entry this way.
type FallbackFirstByStableOrder struct{}

func (FallbackFirstByStableOrder) Fallback(db *gorm.DB, userID uuid.UUID) (Category, error) {
	var category Category

	err := db.
		Where(&Category{UserID: userID}).
		Order("created_at ASC, id ASC").
		First(&category).Error
	if errors.Is(err, ErrResourceNotFound) {
		return Category{}, ErrNoCategoryAvailable
	}
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// ResolveCategory resolves a category reference against the categories of
// a user.
//
// The reference is either a category ID, which must belong to the user, or
// a name. Names are matched exactly and case-sensitively. A name that does
// not match any category resolves via the fallback policy.
func ResolveCategory(db *gorm.DB, userID uuid.UUID, nameOrID string, fallback FallbackPolicy) (Category, error) {
	var category Category

	if id, err := uuid.Parse(nameOrID); err == nil {
		err = db.First(&category, "id = ? AND user_id = ?", id, userID).Error
		if err != nil {
			return Category{}, err
		}

		return category, nil
	}

	err := db.First(&category, "user_id = ? AND name = ?", userID, nameOrID).Error
	if err == nil {
		return category, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Category{}, err
	}

	return fallback.Fallback(db, userID)
}

// defaultCategories is the category set every new user starts with.
var defaultCategories = []Category{
	{Name: "Groceries", Icon: "🛒", Color: "#4caf50", Kind: Expense},
	{Name: "Transport", Icon: "🚌", Color: "#2196f3", Kind: Expense},
	{Name: "Housing", Icon: "🏠", Color: "#795548", Kind: Expense},
	{Name: "Health", Icon: "💊", Color: "#e91e63", Kind: Expense},
	{Name: "Leisure", Icon: "🎉", Color: "#9c27b0", Kind: Expense},
	{Name: "Salary", Icon: "💼", Color: "#ff9800", Kind: Income},
	{Name: "Other", Icon: "📦", Color: "#607d8b", Kind: Expense},
}

// CreateDefaultCategories seeds the default category set for a user.
//
// "Groceries" is seeded first so that it is the stable-order fallback
// for unmatched categories.
func CreateDefaultCategories(db *gorm.DB, userID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, category := range defaultCategories {
			category.UserID = userID
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
