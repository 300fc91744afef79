package models

import (
	"time"

	"github.com/centavo/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RollForward clones the recurring transactions of the month preceding
// target into the target month and returns the number of clones created.
//
// Clones keep description, amount, kind and category of their source and
// are dated on the same day of the month. The time is pinned to 12:00 UTC
// so that a timezone conversion can never shift the date into another
// calendar day. A day that does not exist in the target month is clamped
// to the 1st, a documented lossy fallback.
//
// A month without recurring transactions is a successful no-op. Two
// concurrent calls for the same target month can both succeed and
// double-insert clones, this is an accepted limitation.
func RollForward(db *gorm.DB, userID uuid.UUID, target types.Month) (int, error) {
	source := target.Previous()

	var transactions []Transaction
	err := db.
		Where(&Transaction{UserID: userID, Recurring: true}).
		Where("date >= ? AND date < ?", time.Time(source), time.Time(target)).
		Find(&transactions).Error
	if err != nil {
		return 0, err
	}

	if len(transactions) == 0 {
		return 0, nil
	}

	clones := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		day := t.Date.Day()
		if day > target.Days() {
			day = 1
		}

		clones = append(clones, Transaction{
			Description: t.Description,
			Amount:      t.Amount,
			Kind:        t.Kind,
			Date:        time.Date(target.Year(), target.Month(), day, 12, 0, 0, 0, time.UTC),
			UserID:      t.UserID,
			CategoryID:  t.CategoryID,
			Recurring:   true,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range clones {
			if err := tx.Create(&clones[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(clones), nil
}
