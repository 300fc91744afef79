package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionKind is the kind of a transaction.
//
// The amount of a transaction is always a positive magnitude,
// the sign is carried by the kind.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// Valid reports whether the kind is one of the recognized kinds.
func (k TransactionKind) Valid() bool {
	return k == Income || k == Expense
}

// Transaction represents a single income or expense entry in the ledger.
type Transaction struct {
	DefaultModel
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Kind        TransactionKind
	Date        time.Time
	User        User            `json:"-"`
	UserID      uuid.UUID
	Category    *Category       `json:"-"`
	CategoryID  *uuid.UUID
	Recurring   bool
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave validates the transaction and sets the timezone
// for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if !t.Kind.Valid() {
		return ErrTransactionKindInvalid
	}

	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the transaction before
// committing an update to the database.
//
// BeforeSave runs against the loaded model, not the incoming values,
// so the amount and kind of partial updates are validated here.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Transaction)

	if tx.Statement.Changed("Amount") && toSave.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	if tx.Statement.Changed("Kind") && !toSave.Kind.Valid() {
		return ErrTransactionKindInvalid
	}

	if tx.Statement.Changed("UserID") || tx.Statement.Changed("CategoryID") {
		err := t.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// checkIntegrity verifies references to other resources.
//
// A referenced category must belong to the same user as the transaction.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	err := tx.First(&User{}, toSave.UserID).Error
	if err != nil {
		return err
	}

	if toSave.CategoryID != nil {
		return tx.First(&Category{}, "id = ? AND user_id = ?", toSave.CategoryID, toSave.UserID).Error
	}

	return nil
}
