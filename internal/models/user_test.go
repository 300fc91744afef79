package models_test

import (
	"github.com/centavo/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser(models.User{Email: "  Pat@Example.COM "})

	suite.Assert().Equal("pat@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "pat@example.com"})

	user := models.User{Email: "PAT@example.com"}
	err := models.DB.Create(&user).Error

	suite.Assert().ErrorIs(err, models.ErrUserEmailNotUnique)
}

func (suite *TestSuiteStandard) TestUserCategoriesStableOrder() {
	user := suite.createTestUser(models.User{})
	first := suite.createTestCategory(models.Category{UserID: user.ID, Name: "First"})
	second := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Second"})

	categories, err := user.Categories(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 2)

	suite.Assert().Equal(first.ID, categories[0].ID)
	suite.Assert().Equal(second.ID, categories[1].ID)
}

func (suite *TestSuiteStandard) TestUserCategoriesScoped() {
	user := suite.createTestUser(models.User{Email: "one@example.com"})
	other := suite.createTestUser(models.User{Email: "two@example.com"})
	_ = suite.createTestCategory(models.Category{UserID: other.ID, Name: "Not yours"})

	categories, err := user.Categories(models.DB)
	suite.Require().Nil(err)

	suite.Assert().Len(categories, 0)
}
