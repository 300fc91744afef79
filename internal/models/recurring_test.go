package models_test

import (
	"time"

	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRollForward() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Housing"})

	_ = suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		CategoryID:  &category.ID,
		Description: "Rent",
		Amount:      decimal.NewFromFloat(800),
		Date:        time.Date(2023, 12, 5, 8, 0, 0, 0, time.UTC),
		Recurring:   true,
	})

	// Not recurring, must not be cloned
	_ = suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Description: "Bakery",
		Amount:      decimal.NewFromFloat(10),
		Date:        time.Date(2023, 12, 5, 8, 0, 0, 0, time.UTC),
	})

	count, err := models.RollForward(models.DB, user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().Equal(1, count)

	var clone models.Transaction
	err = models.DB.First(&clone, "date >= ? AND description = ?", time.Time(types.NewMonth(2024, 1)), "Rent").Error
	suite.Require().Nil(err)

	suite.Assert().True(clone.Amount.Equal(decimal.NewFromFloat(800)))
	suite.Assert().Equal(models.Expense, clone.Kind)
	suite.Assert().Equal(category.ID, *clone.CategoryID)
	suite.Assert().True(clone.Recurring)
	suite.Assert().Equal(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC), clone.Date)
}

func (suite *TestSuiteStandard) TestRollForwardDecemberWrap() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Description: "Rent",
		Amount:      decimal.NewFromFloat(800),
		Date:        time.Date(2023, 12, 1, 12, 0, 0, 0, time.UTC),
		Recurring:   true,
	})

	// Target 2024-01 reads from 2023-12
	count, err := models.RollForward(models.DB, user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().Equal(1, count)
}

func (suite *TestSuiteStandard) TestRollForwardDayClamp() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Description: "Subscription",
		Amount:      decimal.NewFromFloat(15),
		Date:        time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC),
		Recurring:   true,
	})

	count, err := models.RollForward(models.DB, user.ID, types.NewMonth(2024, 2))
	suite.Require().Nil(err)
	suite.Assert().Equal(1, count)

	// January 31st does not exist in February, the clone lands on the 1st
	var clone models.Transaction
	err = models.DB.First(&clone, "date >= ?", time.Time(types.NewMonth(2024, 2))).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), clone.Date)
}

func (suite *TestSuiteStandard) TestRollForwardNoop() {
	user := suite.createTestUser(models.User{})

	count, err := models.RollForward(models.DB, user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().Equal(0, count)
}

func (suite *TestSuiteStandard) TestRollForwardScoped() {
	user := suite.createTestUser(models.User{Email: "one@example.com"})
	other := suite.createTestUser(models.User{Email: "two@example.com"})

	_ = suite.createTestTransaction(models.Transaction{
		UserID:      other.ID,
		Description: "Their rent",
		Amount:      decimal.NewFromFloat(800),
		Date:        time.Date(2023, 12, 1, 12, 0, 0, 0, time.UTC),
		Recurring:   true,
	})

	count, err := models.RollForward(models.DB, user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().Equal(0, count)
}

func (suite *TestSuiteStandard) TestRollForwardOnlySourceMonth() {
	user := suite.createTestUser(models.User{})

	// Recurring, but in 2023-11, not in the source month 2023-12
	_ = suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Description: "Old rent",
		Amount:      decimal.NewFromFloat(700),
		Date:        time.Date(2023, 11, 1, 12, 0, 0, 0, time.UTC),
		Recurring:   true,
	})

	count, err := models.RollForward(models.DB, user.ID, types.NewMonth(2024, 1))
	suite.Require().Nil(err)
	suite.Assert().Equal(0, count)
}
