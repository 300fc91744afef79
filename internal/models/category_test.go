package models_test

import (
	"github.com/centavo/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	category := suite.createTestCategory(models.Category{
		UserID: user.ID,
		Name:   " Groceries ",
		Icon:   " 🛒 ",
		Color:  " #4caf50 ",
	})

	suite.Assert().Equal("Groceries", category.Name)
	suite.Assert().Equal("🛒", category.Icon)
	suite.Assert().Equal("#4caf50", category.Color)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUser() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	duplicate := models.Category{UserID: user.ID, Name: "Groceries", Kind: models.Expense}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	// The same name for another user is fine
	other := suite.createTestUser(models.User{Email: "other@example.com"})
	_ = suite.createTestCategory(models.Category{UserID: other.ID, Name: "Groceries"})
}

func (suite *TestSuiteStandard) TestCategoryUserRequired() {
	category := models.Category{UserID: uuid.New(), Name: "Orphan", Kind: models.Expense}
	err := models.DB.Create(&category).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryDeleteReferenced() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})
	_ = suite.createTestTransaction(models.Transaction{UserID: user.ID, CategoryID: &category.ID, Description: "Bakery"})

	err := models.DB.Delete(&category).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryReferenced)
}

func (suite *TestSuiteStandard) TestCategoryDeleteUnreferenced() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	err := models.DB.Delete(&category).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestResolveCategoryByName() {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	category, err := models.ResolveCategory(models.DB, user.ID, "Groceries", models.FallbackFirstByStableOrder{})
	suite.Require().Nil(err)
	suite.Assert().Equal(groceries.ID, category.ID)
}

func (suite *TestSuiteStandard) TestResolveCategoryByID() {
	user := suite.createTestUser(models.User{})
	groceries := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	category, err := models.ResolveCategory(models.DB, user.ID, groceries.ID.String(), models.FallbackFirstByStableOrder{})
	suite.Require().Nil(err)
	suite.Assert().Equal(groceries.ID, category.ID)
}

func (suite *TestSuiteStandard) TestResolveCategoryOtherUsersID() {
	user := suite.createTestUser(models.User{Email: "one@example.com"})
	other := suite.createTestUser(models.User{Email: "two@example.com"})
	theirs := suite.createTestCategory(models.Category{UserID: other.ID, Name: "Groceries"})

	_, err := models.ResolveCategory(models.DB, user.ID, theirs.ID.String(), models.FallbackFirstByStableOrder{})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestResolveCategoryFallback() {
	user := suite.createTestUser(models.User{})
	first := suite.createTestCategory(models.Category{UserID: user.ID, Name: "First"})
	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Second"})

	// An unmatched name resolves to the first category in stable order
	category, err := models.ResolveCategory(models.DB, user.ID, "Invented by the model", models.FallbackFirstByStableOrder{})
	suite.Require().Nil(err)
	suite.Assert().Equal(first.ID, category.ID)
}

func (suite *TestSuiteStandard) TestResolveCategoryCaseSensitive() {
	user := suite.createTestUser(models.User{})
	first := suite.createTestCategory(models.Category{UserID: user.ID, Name: "First"})
	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	// Matching is exact, "groceries" does not match "Groceries"
	category, err := models.ResolveCategory(models.DB, user.ID, "groceries", models.FallbackFirstByStableOrder{})
	suite.Require().Nil(err)
	suite.Assert().Equal(first.ID, category.ID)
}

func (suite *TestSuiteStandard) TestResolveCategoryNoneAvailable() {
	user := suite.createTestUser(models.User{})

	_, err := models.ResolveCategory(models.DB, user.ID, "Anything", models.FallbackFirstByStableOrder{})
	suite.Assert().ErrorIs(err, models.ErrNoCategoryAvailable)
}

func (suite *TestSuiteStandard) TestCreateDefaultCategories() {
	user := suite.createTestUser(models.User{})

	err := models.CreateDefaultCategories(models.DB, user.ID)
	suite.Require().Nil(err)

	categories, err := user.Categories(models.DB)
	suite.Require().Nil(err)
	suite.Require().NotEmpty(categories)

	// Groceries is seeded first so it is the stable-order fallback
	suite.Assert().Equal("Groceries", categories[0].Name)

	var salary models.Category
	suite.Require().Nil(models.DB.First(&salary, "user_id = ? AND name = ?", user.ID, "Salary").Error)
	suite.Assert().Equal(models.Income, salary.Kind)
}
