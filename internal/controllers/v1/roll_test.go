package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/centavo/backend/internal/controllers/v1"
	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRoll() {
	user := suite.createTestUser("jane@example.com")
	category := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Housing"})

	_ = suite.createTestTransaction(models.Transaction{
		Description: "Rent",
		Amount:      decimal.NewFromInt(1200),
		Date:        time.Date(2023, 12, 5, 12, 0, 0, 0, time.UTC),
		Recurring:   true,
		UserID:      user.ID,
		CategoryID:  &category.ID,
	})
	_ = suite.createTestTransaction(models.Transaction{
		Description: "Concert tickets",
		Amount:      decimal.NewFromInt(90),
		Date:        time.Date(2023, 12, 16, 12, 0, 0, 0, time.UTC),
		UserID:      user.ID,
	})

	recorder := test.Request(suite.app, suite.T(), http.MethodPost, "/v1/transactions/roll?month=2024-01", "", suite.authHeaders(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RollResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(1, response.Data.Count)

	var clone models.Transaction
	err := models.DB.First(&clone, "user_id = ? AND date >= ?", user.ID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Error
	suite.Require().NoError(err)
	suite.Assert().Equal("Rent", clone.Description)
	suite.Assert().Equal(time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC), clone.Date)
	suite.Assert().True(clone.Recurring)
}

func (suite *TestSuiteStandard) TestRollNoop() {
	user := suite.createTestUser("jane@example.com")

	_ = suite.createTestTransaction(models.Transaction{
		Description: "Gym",
		Amount:      decimal.NewFromInt(30),
		Date:        time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC),
		Recurring:   true,
		UserID:      user.ID,
	})

	// October is not the month preceding January, so there is nothing to roll
	recorder := test.Request(suite.app, suite.T(), http.MethodPost, "/v1/transactions/roll?month=2024-01", "", suite.authHeaders(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RollResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(0, response.Data.Count)
}

func (suite *TestSuiteStandard) TestRollInvalidMonth() {
	user := suite.createTestUser("jane@example.com")

	tests := []struct {
		name string
		url  string
	}{
		{"missing month", "/v1/transactions/roll"},
		{"empty month", "/v1/transactions/roll?month="},
		{"not a month", "/v1/transactions/roll?month=yesterday"},
		{"day precision", "/v1/transactions/roll?month=2024-01-15"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.app, t, http.MethodPost, tt.url, "", suite.authHeaders(user))
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRollRequiresAuth() {
	recorder := test.Request(suite.app, suite.T(), http.MethodPost, "/v1/transactions/roll?month=2024-01", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
