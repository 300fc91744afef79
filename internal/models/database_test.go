package models_test

import (
	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/internal/types"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestNotFoundMessage() {
	var category models.Category
	err := models.DB.First(&category, "id = ?", uuid.New()).Error

	suite.Require().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no category matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	user := suite.createTestUser(models.User{})
	suite.CloseDB()

	_, err := models.RollForward(models.DB, user.ID, types.NewMonth(2024, 1))
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
