package v1_test

import (
	"encoding/json"
	"net/http"
	"testing"

	v1 "github.com/fincontrol/backend/internal/controllers/v1"
	"github.com/fincontrol/backend/internal/store"
	"github.com/fincontrol/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExport() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Moradia"})
	_ = suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{CategoryID: category.ID, Amount: 123450})
	goal := suite.createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: 1000})
	_ = suite.createTestContribution(suite.T(), goal.ID, v1.ContributionEditable{Amount: 100})

	tests := []struct {
		format      string
		contentType string
		extension   string
		check       func(t *testing.T, body []byte)
	}{
		{"", "application/json; charset=utf-8", ".json", func(t *testing.T, body []byte) {
			var s store.Snapshot
			require.Nil(t, json.Unmarshal(body, &s))
			assert.Len(t, s.Categories, 1)
			assert.Len(t, s.FixedExpenses, 1)
			assert.Len(t, s.Goals, 1)
			assert.Len(t, s.Contributions, 1)
		}},
		{"csv", "text/csv; charset=utf-8", ".csv", func(t *testing.T, body []byte) {
			assert.Contains(t, string(body), "categories")
			assert.Contains(t, string(body), "Moradia")
			assert.Contains(t, string(body), "1.234,50")
		}},
		{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ".xlsx", func(t *testing.T, body []byte) {
			assert.Equal(t, "PK", string(body[:2]), "XLSX files are zip archives")
		}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.format, func(t *testing.T) {
			r := suite.request(t, http.MethodGet, "http://example.com/v1/export?format="+tt.format, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			assert.Equal(t, tt.contentType, r.Header().Get("Content-Type"))
			assert.Contains(t, r.Header().Get("Content-Disposition"), "attachment; filename=\"fincontrol_")
			assert.Contains(t, r.Header().Get("Content-Disposition"), tt.extension)
			tt.check(t, r.Body.Bytes())
		})
	}

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/export?format=pdf", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), "json, xlsx, csv")
}

func (suite *TestSuiteStandard) TestCleanup() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	_ = suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{CategoryID: category.ID})
	_ = suite.createTestVariableExpense(suite.T(), v1.VariableExpenseEditable{CategoryID: category.ID})
	_ = suite.createTestIncome(suite.T(), v1.IncomeEditable{Amount: 10})
	_ = suite.createTestReserveTransaction(suite.T(), v1.ReserveTransactionEditable{Amount: 10})
	goal := suite.createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: 10})
	_ = suite.createTestContribution(suite.T(), goal.ID, v1.ContributionEditable{Amount: 5})

	tests := []struct {
		name    string
		confirm string
		status  int
	}{
		{"No confirmation", "", http.StatusBadRequest},
		{"Wrong confirmation", "yes", http.StatusBadRequest},
		{"Confirmed", "yes-please-delete-everything", http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodDelete, "http://example.com/v1?confirm="+tt.confirm, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	for _, path := range []string{
		"/v1/categories",
		"/v1/fixed-expenses",
		"/v1/variable-expenses",
		"/v1/incomes",
		"/v1/emergency-reserve",
		"/v1/goals",
		"/v1/goals/" + goal.ID.String() + "/contributions",
	} {
		suite.T().Run(path, func(t *testing.T) {
			var response v1.ListResponse[json.RawMessage]
			suite.get(t, "http://example.com"+path, &response)
			assert.Len(t, response.Data, 0)
		})
	}

	// The local user is kept
	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestMe() {
	var response struct {
		Data struct {
			OpenID      string `json:"openId"`
			Name        string `json:"name"`
			LoginMethod string `json:"loginMethod"`
		} `json:"data"`
	}
	suite.get(suite.T(), "http://example.com/v1/me", &response)

	assert.Equal(suite.T(), "local-user", response.Data.OpenID)
	assert.Equal(suite.T(), "Local User", response.Data.Name)
	assert.Equal(suite.T(), "local", response.Data.LoginMethod)
}

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	goal := suite.createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: 10})
	movement := suite.createTestReserveTransaction(suite.T(), v1.ReserveTransactionEditable{Amount: 10})

	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/payment-types", "OPTIONS, GET, POST"},
		{"http://example.com/v1/fixed-expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/variable-expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/incomes", "OPTIONS, GET, POST"},
		{"http://example.com/v1/emergency-reserve", "OPTIONS, GET, POST"},
		{"http://example.com/v1/emergency-reserve/balance", "OPTIONS, GET"},
		{"http://example.com/v1/goals", "OPTIONS, GET, POST"},
		{"http://example.com/v1/dashboard", "OPTIONS, GET"},
		{"http://example.com/v1/alerts/upcoming-due-dates", "OPTIONS, GET"},
		{"http://example.com/v1/export", "OPTIONS, GET"},
		{"http://example.com/v1/me", "OPTIONS, GET"},
		{category.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{goal.Links.Self, "OPTIONS, GET, PATCH, DELETE"},
		{goal.Links.Contributions, "OPTIONS, GET, POST"},
		{movement.Links.Self, "OPTIONS, GET, DELETE"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := suite.request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetailNotFound() {
	for _, path := range []string{"/v1/categories/", "/v1/fixed-expenses/", "/v1/goals/"} {
		suite.T().Run(path, func(t *testing.T) {
			r := suite.request(t, http.MethodOptions, "http://example.com"+path+"a4b2c6c1-2b8e-4c1f-9d55-6a3e1b9f0d7e", "")
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)

			r = suite.request(t, http.MethodOptions, "http://example.com"+path+"nope", "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
