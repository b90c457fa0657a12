package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/fincontrol/backend/internal/controllers/v1"
	"github.com/fincontrol/backend/internal/types"
	"github.com/fincontrol/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestFixedExpensesCreate() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{Name: "Moradia"})

	// isActive is not sent, the expense must be active
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/fixed-expenses", []map[string]any{
		{"name": "Aluguel", "categoryId": category.ID, "amount": 150000, "dueDay": 10},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CreateResponse[v1.FixedExpense]
	test.DecodeResponse(suite.T(), &r, &response)

	expense := response.Data[0].Data
	assert.Equal(suite.T(), "Aluguel", expense.Name)
	assert.Equal(suite.T(), types.Cents(150000), expense.Amount)
	assert.Equal(suite.T(), 10, expense.DueDay)
	assert.True(suite.T(), expense.IsActive)
	assert.Equal(suite.T(), category.ID, expense.CategoryID)

	inactive := suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{CategoryID: category.ID, IsActive: false})
	assert.False(suite.T(), inactive.IsActive, "isActive sent as false must be kept")
}

func (suite *TestSuiteStandard) TestFixedExpensesCreateInvalid() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name     string
		body     map[string]any
		contains string
	}{
		{"No category", map[string]any{"name": "Aluguel", "dueDay": 10}, "categoryId: must not be empty"},
		{"Negative amount", map[string]any{"name": "Aluguel", "categoryId": category.ID, "amount": -1, "dueDay": 10}, "amount: must be at least 0"},
		{"Due day too small", map[string]any{"name": "Aluguel", "categoryId": category.ID, "dueDay": 0}, "dueDay: must be at least 1"},
		{"Due day too large", map[string]any{"name": "Aluguel", "categoryId": category.ID, "dueDay": 32}, "dueDay: must be at most 31"},
		{"Category not a UUID", map[string]any{"name": "Aluguel", "categoryId": "moradia", "dueDay": 10}, "un-parseable"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPost, "http://example.com/v1/fixed-expenses", []any{tt.body})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, r.Body.String(), tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestFixedExpensesListOrder() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	_ = suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{Name: "Internet", CategoryID: category.ID, DueDay: 20})
	_ = suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{Name: "Aluguel", CategoryID: category.ID, DueDay: 5})

	var response v1.ListResponse[v1.FixedExpense]
	suite.get(suite.T(), "http://example.com/v1/fixed-expenses", &response)

	suite.Require().Len(response.Data, 2)
	assert.Equal(suite.T(), "Aluguel", response.Data[0].Name)
	assert.Equal(suite.T(), "Internet", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestFixedExpensesUpdate() {
	expense := suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{Amount: 1000, IsActive: true})

	tests := []struct {
		name   string
		body   map[string]any
		status int
		check  func(t *testing.T, e v1.FixedExpense)
	}{
		{"Deactivate", map[string]any{"isActive": false}, http.StatusOK, func(t *testing.T, e v1.FixedExpense) {
			assert.False(t, e.IsActive)
			assert.Equal(t, types.Cents(1000), e.Amount)
		}},
		{"Amount", map[string]any{"amount": 2500}, http.StatusOK, func(t *testing.T, e v1.FixedExpense) {
			assert.Equal(t, types.Cents(2500), e.Amount)
		}},
		{"Due day", map[string]any{"dueDay": 31}, http.StatusOK, func(t *testing.T, e v1.FixedExpense) {
			assert.Equal(t, 31, e.DueDay)
		}},
		{"Due day invalid", map[string]any{"dueDay": 40}, http.StatusBadRequest, nil},
		{"Name blank", map[string]any{"name": ""}, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, expense.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.check != nil {
				var response v1.Response[v1.FixedExpense]
				test.DecodeResponse(t, &r, &response)
				tt.check(t, *response.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestFixedExpensesDelete() {
	expense := suite.createTestFixedExpense(suite.T(), v1.FixedExpenseEditable{})

	r := suite.request(suite.T(), http.MethodDelete, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, expense.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestVariableExpensesCreate() {
	paymentType := suite.createTestPaymentType(suite.T(), v1.PaymentTypeEditable{Name: "Crédito"})
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	// installments and currentInstallment default to 1
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/variable-expenses", []map[string]any{
		{"name": "Mercado", "categoryId": category.ID, "amount": 25990, "date": "2024-03-15T12:00:00-03:00", "paymentTypeId": paymentType.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CreateResponse[v1.VariableExpense]
	test.DecodeResponse(suite.T(), &r, &response)

	expense := response.Data[0].Data
	assert.Equal(suite.T(), 1, expense.Installments)
	assert.Equal(suite.T(), 1, expense.CurrentInstallment)
	assert.False(suite.T(), expense.IsPaid)
	assert.Equal(suite.T(), paymentType.ID, *expense.PaymentTypeID)
	assert.True(suite.T(), time.Date(2024, 3, 15, 15, 0, 0, 0, time.UTC).Equal(expense.Date))

	var stored v1.Response[v1.VariableExpense]
	suite.get(suite.T(), expense.Links.Self, &stored)
	assert.True(suite.T(), expense.Date.Equal(stored.Data.Date))
	assert.Equal(suite.T(), time.UTC, stored.Data.Date.Location())
}

func (suite *TestSuiteStandard) TestVariableExpensesInstallments() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name     string
		body     map[string]any
		status   int
		contains string
	}{
		{"Current after last", map[string]any{"installments": 3, "currentInstallment": 4}, http.StatusBadRequest, "currentInstallment: must not be greater than installments"},
		{"No installments", map[string]any{"installments": 0}, http.StatusBadRequest, "installments: must be at least 1"},
		{"Current only", map[string]any{"currentInstallment": 2}, http.StatusBadRequest, "currentInstallment: must not be greater than installments"},
		{"Last installment", map[string]any{"installments": 10, "currentInstallment": 10}, http.StatusCreated, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body := map[string]any{"name": "Geladeira", "categoryId": category.ID, "amount": 30000, "date": "2024-03-01T10:00:00Z"}
			for k, v := range tt.body {
				body[k] = v
			}

			r := suite.request(t, http.MethodPost, "http://example.com/v1/variable-expenses", []any{body})
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, r.Body.String(), tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestVariableExpensesUpdate() {
	expense := suite.createTestVariableExpense(suite.T(), v1.VariableExpenseEditable{Installments: 10, CurrentInstallment: 3})

	// Only one of the installment fields is known, so there is nothing to compare
	r := suite.request(suite.T(), http.MethodPatch, expense.Links.Self, map[string]any{"currentInstallment": 12})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(suite.T(), http.MethodPatch, expense.Links.Self, map[string]any{"installments": 2, "currentInstallment": 3})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), "currentInstallment")

	r = suite.request(suite.T(), http.MethodPatch, expense.Links.Self, map[string]any{"isPaid": true, "notes": "Pago"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.VariableExpense]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.IsPaid)
	assert.Equal(suite.T(), "Pago", response.Data.Notes)
	assert.Equal(suite.T(), 10, response.Data.Installments)
}

func (suite *TestSuiteStandard) TestVariableExpensesDateRange() {
	category := suite.createTestCategory(suite.T(), v1.CategoryEditable{})
	for _, date := range []time.Time{
		time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	} {
		_ = suite.createTestVariableExpense(suite.T(), v1.VariableExpenseEditable{CategoryID: category.ID, Date: date})
	}

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 4},
		{"March, dates", "?startDate=2024-03-01&endDate=2024-03-31", 2},
		{"March, timestamps", "?startDate=2024-03-01T00:00:00Z&endDate=2024-03-31T23:59:59Z", 2},
		{"Only start", "?startDate=2024-03-01", 4},
		{"Start after end", "?startDate=2024-04-01&endDate=2024-03-01", 4},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.ListResponse[v1.VariableExpense]
			suite.get(t, "http://example.com/v1/variable-expenses"+tt.query, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}

	var response v1.ListResponse[v1.VariableExpense]
	suite.get(suite.T(), "http://example.com/v1/variable-expenses", &response)
	assert.True(suite.T(), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).Equal(response.Data[0].Date), "List must be sorted newest first")

	r := suite.request(suite.T(), http.MethodGet, "http://example.com/v1/variable-expenses?startDate=yesterday", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), "startDate")
}

func (suite *TestSuiteStandard) TestIncomes() {
	income := suite.createTestIncome(suite.T(), v1.IncomeEditable{Name: "Salário", Amount: 850000, IsRecurring: true})
	assert.Equal(suite.T(), types.Cents(850000), income.Amount)
	assert.True(suite.T(), income.IsRecurring)
	assert.Equal(suite.T(), "http://example.com/v1/incomes/"+income.ID.String(), income.Links.Self)

	_ = suite.createTestIncome(suite.T(), v1.IncomeEditable{Name: "Freela", Amount: 120000, Date: time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)})

	var list v1.ListResponse[v1.Income]
	suite.get(suite.T(), "http://example.com/v1/incomes?startDate=2024-03-01&endDate=2024-03-31", &list)
	suite.Require().Len(list.Data, 1)
	assert.Equal(suite.T(), income.ID, list.Data[0].ID)

	r := suite.request(suite.T(), http.MethodPatch, income.Links.Self, map[string]any{"amount": 900000})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response[v1.Income]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), types.Cents(900000), response.Data.Amount)
	assert.Equal(suite.T(), "Salário", response.Data.Name)

	r = suite.request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", `[{"name": "Sem data", "amount": 100}]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), "date: must not be empty")

	r = suite.request(suite.T(), http.MethodDelete, income.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/incomes/"+uuid.NewString(), map[string]any{"amount": 1})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
