package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fincontrol/backend/internal/alerts"
	v1 "github.com/fincontrol/backend/internal/controllers/v1"
	"github.com/fincontrol/backend/internal/dashboard"
	"github.com/fincontrol/backend/internal/types"
	"github.com/fincontrol/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// monthlySummary is a dashboard summary with the month as it is sent.
type monthlySummary struct {
	dashboard.Summary
	Month string `json:"month"`
}

func (suite *TestSuiteStandard) TestDashboard() {
	housing := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Moradia", Icon: "🏠"})
	food := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Alimentação", Icon: "🍎"})

	_ = suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{CategoryID: housing.ID, Amount: 150000, IsActive: true})
	_ = suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{CategoryID: housing.ID, Amount: 99999, IsActive: false})
	_ = suite.createTestVariableExpense(suite.T(), v1.VariableExpenseEditable{CategoryID: housing.ID, Amount: 50000, Date: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)})
	_ = suite.createTestVariableExpense(suite.T(), v1.VariableExpenseEditable{CategoryID: food.ID, Amount: 30000, Date: time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)})
	_ = suite.createTestVariableExpense(suite.T(), v1.VariableExpenseEditable{CategoryID: food.ID, Amount: 70000, Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestIncome(suite.T(), v1.IncomeEditable{Amount: 500000, Date: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)})
	_ = suite.createTestIncome(suite.T(), v1.IncomeEditable{Amount: 1000, Date: time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)})
	_ = suite.createTestReserveTransaction(suite.T(), v1.ReserveTransactionEditable{Amount: 100000})

	var response v1.Response[monthlySummary]
	suite.get(suite.T(), "http://example.com/v1/dashboard?month=3&year=2024", &response)

	s := response.Data
	assert.Equal(suite.T(), "2024-03", s.Month)
	assert.Equal(suite.T(), types.Cents(150000), s.TotalFixedExpenses)
	assert.Equal(suite.T(), types.Cents(80000), s.TotalVariableExpenses)
	assert.Equal(suite.T(), types.Cents(230000), s.TotalExpenses)
	assert.Equal(suite.T(), types.Cents(500000), s.TotalIncomes)
	assert.Equal(suite.T(), types.Cents(270000), s.Balance)
	assert.Equal(suite.T(), types.Cents(100000), s.ReserveBalance)
	assert.Equal(suite.T(), types.Cents(370000), s.BalanceWithReserve)

	suite.Require().Len(s.CategoryBreakdown, 2)
	assert.Equal(suite.T(), "Moradia", s.CategoryBreakdown[0].CategoryName)
	assert.Equal(suite.T(), types.Cents(200000), s.CategoryBreakdown[0].Amount)
	assert.True(suite.T(), decimal.RequireFromString("86.9565").Equal(s.CategoryBreakdown[0].Percentage), s.CategoryBreakdown[0].Percentage.String())
	assert.Equal(suite.T(), "Alimentação", s.CategoryBreakdown[1].CategoryName)
	assert.True(suite.T(), decimal.RequireFromString("13.0435").Equal(s.CategoryBreakdown[1].Percentage), s.CategoryBreakdown[1].Percentage.String())
}

func (suite *TestSuiteStandard) TestDashboardDeletedCategory() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Lazer"})
	_ = suite.createTestVariableExpense(suite.T(), v1.VariableExpenseEditable{CategoryID: category.ID, Amount: 1000})

	r := suite.request(suite.T(), http.MethodDelete, category.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	var response v1.Response[monthlySummary]
	suite.get(suite.T(), "http://example.com/v1/dashboard?month=3&year=2024", &response)

	suite.Require().Len(response.Data.CategoryBreakdown, 1)
	assert.Equal(suite.T(), dashboard.UnknownCategoryName, response.Data.CategoryBreakdown[0].CategoryName)
	assert.Equal(suite.T(), dashboard.UnknownCategoryIcon, response.Data.CategoryBreakdown[0].CategoryIcon)
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	var response v1.Response[monthlySummary]
	suite.get(suite.T(), "http://example.com/v1/dashboard", &response)

	assert.Equal(suite.T(), types.MonthOf(time.Now().UTC()).String(), response.Data.Month, "The month must default to the current month")
	assert.Equal(suite.T(), types.Cents(0), response.Data.TotalExpenses)
	assert.Len(suite.T(), response.Data.CategoryBreakdown, 0)
}

func (suite *TestSuiteStandard) TestDashboardInvalidMonth() {
	tests := []struct {
		query    string
		contains string
	}{
		{"?month=13&year=2024", "month: must be at most 12"},
		{"?month=-1", "month: must be at least 1"},
		{"?month=march", "unparseable"},
		{"?year=20245", "year: must be at most 9999"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			for _, path := range []string{"/v1/dashboard", "/v1/alerts/upcoming-due-dates"} {
				r := suite.request(t, http.MethodGet, "http://example.com"+path+tt.query, "")
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
				assert.Contains(t, r.Body.String(), tt.contains)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestUpcomingDueDates() {
	today := time.Now().UTC()

	due := suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{Name: "Internet", DueDay: today.Day(), IsActive: true})
	inactive := suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{Name: "Academia", DueDay: today.Day(), IsActive: false})

	var response v1.ListResponse[alerts.Alert]
	suite.get(suite.T(), "http://example.com/v1/alerts/upcoming-due-dates", &response)

	suite.Require().Len(response.Data, 2, "Inactive expenses are reported, too")
	ids := []any{response.Data[0].ID, response.Data[1].ID}
	assert.Contains(suite.T(), ids, due.ID)
	assert.Contains(suite.T(), ids, inactive.ID)
	assert.True(suite.T(), types.StartOfDay(today, time.UTC).Equal(response.Data[0].DueDate))

	// A month in the past has no upcoming due dates
	suite.get(suite.T(), fmt.Sprintf("http://example.com/v1/alerts/upcoming-due-dates?month=%d&year=%d", today.Month(), today.Year()-1), &response)
	assert.Len(suite.T(), response.Data, 0)
}
