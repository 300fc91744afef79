package models

import (
	"fmt"
	"time"

	"github.com/centavo/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeltaStatus classifies a month-over-month spending delta.
type DeltaStatus string

const (
	DeltaWarning DeltaStatus = "warning" // spending went up
	DeltaGood    DeltaStatus = "good"    // spending went down
	DeltaNeutral DeltaStatus = "neutral" // spending is unchanged
)

// deltaEpsilon absorbs rounding noise when classifying a delta.
var deltaEpsilon = decimal.NewFromFloat(0.01)

// MonthDelta is the month-over-month spending comparison for a user.
type MonthDelta struct {
	Current  decimal.Decimal `json:"current" example:"150.00"`  // Expense total for the requested month
	Previous decimal.Decimal `json:"previous" example:"100.00"` // Expense total for the preceding month
	Diff     decimal.Decimal `json:"diff" example:"50.00"`      // Current minus previous
	Status   DeltaStatus     `json:"status" example:"warning"`  // Classification of the diff
	Message  string          `json:"message" example:"You spent 50.00 more than last month"`
}

// ExpenseSum returns the sum of all expense amounts of the user in the
// month. A month without expenses sums to zero.
func ExpenseSum(db *gorm.DB, userID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Model(&Transaction{}).
		Where(&Transaction{UserID: userID, Kind: Expense}).
		Where("date >= ? AND date < ?", time.Time(month), time.Time(month.AddDate(0, 1))).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting the expense sum for %s failed: %w", month, err)
	}

	// SUM over zero rows is NULL, not 0
	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// ComputeDelta compares the expense totals of the month and the month
// preceding it and classifies the difference.
func ComputeDelta(db *gorm.DB, userID uuid.UUID, month types.Month) (MonthDelta, error) {
	current, err := ExpenseSum(db, userID, month)
	if err != nil {
		return MonthDelta{}, err
	}

	previous, err := ExpenseSum(db, userID, month.Previous())
	if err != nil {
		return MonthDelta{}, err
	}

	diff := current.Sub(previous)

	delta := MonthDelta{
		Current:  current,
		Previous: previous,
		Diff:     diff,
		Status:   DeltaNeutral,
		Message:  "Your spending is stable compared to last month",
	}

	switch {
	case diff.GreaterThan(deltaEpsilon):
		delta.Status = DeltaWarning
		delta.Message = fmt.Sprintf("You spent %s more than last month", diff.StringFixed(2))
	case diff.LessThan(deltaEpsilon.Neg()):
		delta.Status = DeltaGood
		delta.Message = fmt.Sprintf("You spent %s less than last month", diff.Abs().StringFixed(2))
	}

	return delta, nil
}
