package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/centavo/backend/internal/controllers/v1"
	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/test"
)

func (suite *TestSuiteStandard) TestRegistration() {
	recorder := test.Request(suite.app, suite.T(), http.MethodPost, "/v1/registration",
		`{ "email": "Jane@Example.com", "password": "correct horse battery staple" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.RegistrationResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("jane@example.com", response.Data.Email)

	// Signup seeds the default category set
	login := test.Request(suite.app, suite.T(), http.MethodPost, "/v1/login",
		`{ "email": "jane@example.com", "password": "correct horse battery staple" }`)
	test.AssertHTTPStatus(suite.T(), &login, http.StatusOK)

	var loginResponse v1.LoginResponse
	test.DecodeResponse(suite.T(), &login, &loginResponse)
	suite.Require().NotNil(loginResponse.Data)

	categories := test.Request(suite.app, suite.T(), http.MethodGet, "/v1/categories", nil,
		map[string]string{"Authorization": "Bearer " + loginResponse.Data.Token})
	test.AssertHTTPStatus(suite.T(), &categories, http.StatusOK)

	var categoryList v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &categories, &categoryList)
	suite.Require().NotEmpty(categoryList.Data)
	suite.Assert().Equal("Groceries", categoryList.Data[0].Name)
}

func (suite *TestSuiteStandard) TestRegistrationInvalid() {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"empty body", "", http.StatusBadRequest},
		{"broken JSON", `{ "email": "jane@example.com"`, http.StatusBadRequest},
		{"missing email", `{ "password": "correct horse battery staple" }`, http.StatusBadRequest},
		{"missing password", `{ "email": "jane@example.com" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.app, t, http.MethodPost, "/v1/registration", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestRegistrationDuplicateEmail() {
	_ = suite.createTestUser("jane@example.com")

	recorder := test.Request(suite.app, suite.T(), http.MethodPost, "/v1/registration",
		`{ "email": "jane@example.com", "password": "correct horse battery staple" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestLoginWrongPassword() {
	_ = suite.createTestUser("jane@example.com")

	recorder := test.Request(suite.app, suite.T(), http.MethodPost, "/v1/login",
		`{ "email": "jane@example.com", "password": "Tr0ub4dor&3" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestLoginUnknownUser() {
	recorder := test.Request(suite.app, suite.T(), http.MethodPost, "/v1/login",
		`{ "email": "nobody@example.com", "password": "correct horse battery staple" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestAuthRequired() {
	user := suite.createTestUser("jane@example.com")

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no header", nil},
		{"not a bearer token", map[string]string{"Authorization": "Basic 123"}},
		{"empty bearer token", map[string]string{"Authorization": "Bearer "}},
		{"garbage token", map[string]string{"Authorization": "Bearer not.a.token"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder = test.Request(suite.app, t, http.MethodGet, "/v1/categories", nil, tt.headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
		})
	}

	// A valid token passes
	recorder := test.Request(suite.app, suite.T(), http.MethodGet, "/v1/categories", nil, suite.authHeaders(user))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAuthDeletedUser() {
	user := suite.createTestUser("jane@example.com")
	headers := suite.authHeaders(user)

	suite.Require().Nil(models.DB.Delete(&user).Error)

	recorder := test.Request(suite.app, suite.T(), http.MethodGet, "/v1/categories", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
