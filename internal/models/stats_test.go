package models_test

import (
	"time"

	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createExpense(user models.User, amount float64, date time.Time, kind models.TransactionKind) {
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(amount),
		Kind:   kind,
		Date:   date,
	})
}

func (suite *TestSuiteStandard) TestExpenseSum() {
	user := suite.createTestUser(models.User{})

	suite.createExpense(user, 100, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), models.Expense)
	suite.createExpense(user, 50, time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC), models.Expense)

	// Income and other months do not count
	suite.createExpense(user, 2000, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), models.Income)
	suite.createExpense(user, 75, time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), models.Expense)

	sum, err := models.ExpenseSum(models.DB, user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().True(sum.Equal(decimal.NewFromFloat(150)), "expense sum is %s, want 150", sum)
}

func (suite *TestSuiteStandard) TestExpenseSumEmpty() {
	user := suite.createTestUser(models.User{})

	sum, err := models.ExpenseSum(models.DB, user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().True(sum.IsZero())
}

func (suite *TestSuiteStandard) TestComputeDeltaWarning() {
	user := suite.createTestUser(models.User{})

	suite.createExpense(user, 150, time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), models.Expense)
	suite.createExpense(user, 100, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), models.Expense)

	delta, err := models.ComputeDelta(models.DB, user.ID, types.NewMonth(2024, 2))
	suite.Require().Nil(err)

	suite.Assert().Equal(models.DeltaWarning, delta.Status)
	suite.Assert().True(delta.Diff.Equal(decimal.NewFromFloat(50)))
	suite.Assert().Equal("You spent 50.00 more than last month", delta.Message)
}

func (suite *TestSuiteStandard) TestComputeDeltaGood() {
	user := suite.createTestUser(models.User{})

	suite.createExpense(user, 80, time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), models.Expense)
	suite.createExpense(user, 100, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), models.Expense)

	delta, err := models.ComputeDelta(models.DB, user.ID, types.NewMonth(2024, 2))
	suite.Require().Nil(err)

	suite.Assert().Equal(models.DeltaGood, delta.Status)
	suite.Assert().Equal("You spent 20.00 less than last month", delta.Message)
}

func (suite *TestSuiteStandard) TestComputeDeltaNeutral() {
	user := suite.createTestUser(models.User{})

	suite.createExpense(user, 100, time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), models.Expense)
	suite.createExpense(user, 100, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), models.Expense)

	delta, err := models.ComputeDelta(models.DB, user.ID, types.NewMonth(2024, 2))
	suite.Require().Nil(err)

	suite.Assert().Equal(models.DeltaNeutral, delta.Status)
	suite.Assert().Equal("Your spending is stable compared to last month", delta.Message)
}

func (suite *TestSuiteStandard) TestComputeDeltaEpsilon() {
	user := suite.createTestUser(models.User{})

	// A difference within the epsilon is still neutral
	suite.createExpense(user, 100.01, time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), models.Expense)
	suite.createExpense(user, 100, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), models.Expense)

	delta, err := models.ComputeDelta(models.DB, user.ID, types.NewMonth(2024, 2))
	suite.Require().Nil(err)

	suite.Assert().Equal(models.DeltaNeutral, delta.Status)
}

func (suite *TestSuiteStandard) TestComputeDeltaEmptyMonths() {
	user := suite.createTestUser(models.User{})

	delta, err := models.ComputeDelta(models.DB, user.ID, types.NewMonth(2024, 2))
	suite.Require().Nil(err)

	suite.Assert().Equal(models.DeltaNeutral, delta.Status)
	suite.Assert().True(delta.Current.IsZero())
	suite.Assert().True(delta.Previous.IsZero())
}
