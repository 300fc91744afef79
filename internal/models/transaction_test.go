package models_test

import (
	"time"

	"github.com/centavo/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionKindValid() {
	suite.Assert().True(models.Income.Valid())
	suite.Assert().True(models.Expense.Valid())
	suite.Assert().False(models.TransactionKind("transfer").Valid())
	suite.Assert().False(models.TransactionKind("").Valid())
}

func (suite *TestSuiteStandard) TestTransactionAmountNegative() {
	user := suite.createTestUser(models.User{})

	transaction := models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(-10),
		Kind:   models.Expense,
	}
	err := models.DB.Create(&transaction).Error

	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNegative)
}

func (suite *TestSuiteStandard) TestTransactionKindInvalid() {
	user := suite.createTestUser(models.User{})

	transaction := models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(10),
		Kind:   "transfer",
	}
	err := models.DB.Create(&transaction).Error

	suite.Assert().ErrorIs(err, models.ErrTransactionKindInvalid)
}

func (suite *TestSuiteStandard) TestTransactionUpdateAmountNegative() {
	user := suite.createTestUser(models.User{})
	transaction := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(10),
	})

	err := models.DB.Model(&transaction).
		Select("", "Amount").
		Updates(models.Transaction{UserID: user.ID, Amount: decimal.NewFromFloat(-5)}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionAmountNegative)

	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, transaction.ID).Error)
	suite.Assert().True(reloaded.Amount.Equal(decimal.NewFromFloat(10)), "amount is %s", reloaded.Amount)
}

func (suite *TestSuiteStandard) TestTransactionUpdateKindInvalid() {
	user := suite.createTestUser(models.User{})
	transaction := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(10),
	})

	err := models.DB.Model(&transaction).
		Select("", "Kind").
		Updates(models.Transaction{UserID: user.ID, Kind: "transfer"}).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionKindInvalid)

	var reloaded models.Transaction
	suite.Require().NoError(models.DB.First(&reloaded, transaction.ID).Error)
	suite.Assert().Equal(models.Expense, reloaded.Kind)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaults() {
	user := suite.createTestUser(models.User{})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(10),
	})

	suite.Assert().False(transaction.Date.IsZero())
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	user := suite.createTestUser(models.User{})
	berlin, err := time.LoadLocation("Europe/Berlin")
	suite.Require().Nil(err)

	transaction := suite.createTestTransaction(models.Transaction{
		UserID: user.ID,
		Amount: decimal.NewFromFloat(10),
		Date:   time.Date(2024, 1, 15, 0, 30, 0, 0, berlin),
	})

	var reloaded models.Transaction
	suite.Require().Nil(models.DB.First(&reloaded, transaction.ID).Error)

	suite.Assert().Equal(time.UTC, reloaded.Date.Location())
	suite.Assert().True(reloaded.Date.Equal(transaction.Date))
}

func (suite *TestSuiteStandard) TestTransactionUserRequired() {
	transaction := models.Transaction{
		UserID: uuid.New(),
		Amount: decimal.NewFromFloat(10),
		Kind:   models.Expense,
	}
	err := models.DB.Create(&transaction).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionCategorySameUser() {
	user := suite.createTestUser(models.User{Email: "one@example.com"})
	other := suite.createTestUser(models.User{Email: "two@example.com"})
	theirs := suite.createTestCategory(models.Category{UserID: other.ID, Name: "Groceries"})

	transaction := models.Transaction{
		UserID:     user.ID,
		CategoryID: &theirs.ID,
		Amount:     decimal.NewFromFloat(10),
		Kind:       models.Expense,
	}
	err := models.DB.Create(&transaction).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionDescriptionTrimmed() {
	user := suite.createTestUser(models.User{})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:      user.ID,
		Description: " Bakery ",
		Amount:      decimal.NewFromFloat(10),
	})

	suite.Assert().Equal("Bakery", transaction.Description)
}
