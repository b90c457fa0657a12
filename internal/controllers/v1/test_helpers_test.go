package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/fincontrol/backend/internal/controllers/v1"
	"github.com/fincontrol/backend/test"
	"github.com/google/uuid"
)

// create posts a single editable to the list endpoint at path and returns
// the first item of the response.
func create[T any](t *testing.T, suite *TestSuiteStandard, path string, editable any, expectedStatus ...int) v1.Response[T] {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(t, http.MethodPost, "http://example.com"+path, []any{editable})
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CreateResponse[T]
	test.DecodeResponse(t, &r, &response)

	if len(response.Data) == 0 {
		return v1.Response[T]{Error: response.Error}
	}
	return response.Data[0]
}

func (suite *TestSuiteStandard) createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.Category {
	if c.Name == "" {
		c.Name = uuid.NewString()[:8]
	}

	r := create[v1.Category](t, suite, "/v1/categories", c, expectedStatus...)
	if r.Data == nil {
		return v1.Category{}
	}
	return *r.Data
}

func (suite *TestSuiteStandard) createTestPaymentType(t *testing.T, p v1.PaymentTypeEditable, expectedStatus ...int) v1.PaymentType {
	if p.Name == "" {
		p.Name = uuid.NewString()[:8]
	}

	r := create[v1.PaymentType](t, suite, "/v1/payment-types", p, expectedStatus...)
	if r.Data == nil {
		return v1.PaymentType{}
	}
	return *r.Data
}

func (suite *TestSuiteStandard) createTestFixedExpense(t *testing.T, e v1.FixedExpenseEditable, expectedStatus ...int) v1.FixedExpense {
	if e.CategoryID == uuid.Nil {
		e.CategoryID = suite.createTestCategory(t, v1.CategoryEditable{}).ID
	}

	if e.Name == "" {
		e.Name = "Aluguel"
	}

	if e.DueDay == 0 {
		e.DueDay = 10
	}

	r := create[v1.FixedExpense](t, suite, "/v1/fixed-expenses", e, expectedStatus...)
	if r.Data == nil {
		return v1.FixedExpense{}
	}
	return *r.Data
}

func (suite *TestSuiteStandard) createTestVariableExpense(t *testing.T, e v1.VariableExpenseEditable, expectedStatus ...int) v1.VariableExpense {
	if e.CategoryID == uuid.Nil {
		e.CategoryID = suite.createTestCategory(t, v1.CategoryEditable{}).ID
	}

	if e.Name == "" {
		e.Name = "Mercado"
	}

	if e.Date.IsZero() {
		e.Date = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}

	if e.Installments == 0 {
		e.Installments = 1
	}

	if e.CurrentInstallment == 0 {
		e.CurrentInstallment = 1
	}

	r := create[v1.VariableExpense](t, suite, "/v1/variable-expenses", e, expectedStatus...)
	if r.Data == nil {
		return v1.VariableExpense{}
	}
	return *r.Data
}

func (suite *TestSuiteStandard) createTestIncome(t *testing.T, i v1.IncomeEditable, expectedStatus ...int) v1.Income {
	if i.Name == "" {
		i.Name = "Salário"
	}

	if i.Date.IsZero() {
		i.Date = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	}

	r := create[v1.Income](t, suite, "/v1/incomes", i, expectedStatus...)
	if r.Data == nil {
		return v1.Income{}
	}
	return *r.Data
}

func (suite *TestSuiteStandard) createTestReserveTransaction(t *testing.T, e v1.ReserveTransactionEditable, expectedStatus ...int) v1.ReserveTransaction {
	r := create[v1.ReserveTransaction](t, suite, "/v1/emergency-reserve", e, expectedStatus...)
	if r.Data == nil {
		return v1.ReserveTransaction{}
	}
	return *r.Data
}

func (suite *TestSuiteStandard) createTestGoal(t *testing.T, g v1.GoalEditable, expectedStatus ...int) v1.Goal {
	if g.Name == "" {
		g.Name = "Viagem"
	}

	r := create[v1.Goal](t, suite, "/v1/goals", g, expectedStatus...)
	if r.Data == nil {
		return v1.Goal{}
	}
	return *r.Data
}

func (suite *TestSuiteStandard) createTestContribution(t *testing.T, goalID uuid.UUID, c v1.ContributionEditable, expectedStatus ...int) v1.Response[v1.Contribution] {
	return create[v1.Contribution](t, suite, "/v1/goals/"+goalID.String()+"/contributions", c, expectedStatus...)
}

// get requests reqURL and decodes the response into target.
func (suite *TestSuiteStandard) get(t *testing.T, reqURL string, target any, expectedStatus ...int) {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := suite.request(t, http.MethodGet, reqURL, "")
	test.AssertHTTPStatus(t, &r, expectedStatus...)
	test.DecodeResponse(t, &r, target)
}
