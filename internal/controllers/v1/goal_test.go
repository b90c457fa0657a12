package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/fincontrol/backend/internal/controllers/v1"
	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/types"
	"github.com/fincontrol/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGoalsCreate() {
	goal := suite.createTestGoal(suite.T(), v1.GoalEditable{Name: "Viagem", TargetAmount: 500000})

	assert.Equal(suite.T(), types.Cents(500000), goal.TargetAmount)
	assert.Equal(suite.T(), types.Cents(0), goal.CurrentAmount)
	assert.False(suite.T(), goal.IsCompleted)
	assert.Equal(suite.T(), models.DefaultGoalIcon, goal.Icon)
	assert.Equal(suite.T(), "http://example.com/v1/goals/"+goal.ID.String(), goal.Links.Self)
	assert.Equal(suite.T(), goal.Links.Self+"/contributions", goal.Links.Contributions)

	// currentAmount and isCompleted cannot be set
	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/goals", `[{"name": "Carro", "targetAmount": 100, "currentAmount": 100, "isCompleted": true}]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CreateResponse[v1.Goal]
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), types.Cents(0), response.Data[0].Data.CurrentAmount)
	assert.False(suite.T(), response.Data[0].Data.IsCompleted)
}

func (suite *TestSuiteStandard) TestGoalsCreateInvalid() {
	tests := []struct {
		name     string
		goal     v1.GoalEditable
		contains string
	}{
		{"No target", v1.GoalEditable{Name: "Viagem"}, "targetAmount: must be greater than 0"},
		{"Negative target", v1.GoalEditable{Name: "Viagem", TargetAmount: -10}, "targetAmount: must be greater than 0"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			g := suite.createTestGoal(t, tt.goal, http.StatusBadRequest)
			assert.Equal(t, uuid.Nil, g.ID)

			r := suite.request(t, http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{tt.goal})
			assert.Contains(t, r.Body.String(), tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsContributions() {
	goal := suite.createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: 500000})

	first := suite.createTestContribution(suite.T(), goal.ID, v1.ContributionEditable{Amount: 200000, Date: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)})
	assert.Equal(suite.T(), goal.ID, first.Data.GoalID)
	assert.Equal(suite.T(), goal.Links.Self, first.Data.Links.Goal)
	assert.Equal(suite.T(), "http://example.com/v1/contributions/"+first.Data.ID.String(), first.Data.Links.Self)

	var response v1.Response[v1.Goal]
	suite.get(suite.T(), goal.Links.Self, &response)
	assert.Equal(suite.T(), types.Cents(200000), response.Data.CurrentAmount)
	assert.False(suite.T(), response.Data.IsCompleted)

	// Date defaults to now
	second := suite.createTestContribution(suite.T(), goal.ID, v1.ContributionEditable{Amount: 300000, Description: "Décimo terceiro"})
	assert.WithinDuration(suite.T(), time.Now(), second.Data.Date, time.Minute)

	suite.get(suite.T(), goal.Links.Self, &response)
	assert.Equal(suite.T(), types.Cents(500000), response.Data.CurrentAmount)
	assert.True(suite.T(), response.Data.IsCompleted)

	var list v1.ListResponse[v1.Contribution]
	suite.get(suite.T(), goal.Links.Contributions, &list)
	suite.Require().Len(list.Data, 2)
	assert.Equal(suite.T(), second.Data.ID, list.Data[0].ID, "Contributions must be sorted newest first")

	// Removing a contribution reverts its effect
	r := suite.request(suite.T(), http.MethodDelete, second.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.get(suite.T(), goal.Links.Self, &response)
	assert.Equal(suite.T(), types.Cents(200000), response.Data.CurrentAmount)
	assert.False(suite.T(), response.Data.IsCompleted)

	// Deleting it again does nothing
	r = suite.request(suite.T(), http.MethodDelete, second.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.get(suite.T(), goal.Links.Self, &response)
	assert.Equal(suite.T(), types.Cents(200000), response.Data.CurrentAmount)
}

func (suite *TestSuiteStandard) TestGoalsContributionsInvalid() {
	goal := suite.createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: 1000})

	tests := []struct {
		name   string
		goalID uuid.UUID
		amount types.Cents
		status int
	}{
		{"Goal does not exist", uuid.New(), 100, http.StatusNotFound},
		{"Zero amount", goal.ID, 0, http.StatusBadRequest},
		{"Negative amount", goal.ID, -100, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.createTestContribution(t, tt.goalID, v1.ContributionEditable{Amount: tt.amount}, tt.status)
			assert.Nil(t, r.Data)
			assert.NotNil(t, r.Error)
		})
	}

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/goals/nope/contributions", []v1.ContributionEditable{{Amount: 1}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.Response[v1.Goal]
	suite.get(suite.T(), goal.Links.Self, &response)
	assert.Equal(suite.T(), types.Cents(0), response.Data.CurrentAmount, "Failed contributions must not change the goal")

	var list v1.ListResponse[v1.Contribution]
	suite.get(suite.T(), "http://example.com/v1/goals/"+uuid.NewString()+"/contributions", &list)
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := suite.createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: 1000})
	_ = suite.createTestContribution(suite.T(), goal.ID, v1.ContributionEditable{Amount: 600})

	tests := []struct {
		name      string
		body      map[string]any
		status    int
		current   types.Cents
		completed bool
	}{
		{"Lower target", map[string]any{"targetAmount": 500}, http.StatusOK, 600, true},
		{"Raise target", map[string]any{"targetAmount": 800}, http.StatusOK, 600, false},
		{"Current amount is ignored", map[string]any{"currentAmount": 5000, "name": "Carro"}, http.StatusOK, 600, false},
		{"Zero target", map[string]any{"targetAmount": 0}, http.StatusBadRequest, 600, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(t, http.MethodPatch, goal.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.Response[v1.Goal]
			suite.get(t, goal.Links.Self, &response)
			assert.Equal(t, tt.current, response.Data.CurrentAmount)
			assert.Equal(t, tt.completed, response.Data.IsCompleted)
		})
	}

	r := suite.request(suite.T(), http.MethodPatch, "http://example.com/v1/goals/"+uuid.NewString(), map[string]any{"targetAmount": 5})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	goal := suite.createTestGoal(suite.T(), v1.GoalEditable{TargetAmount: 1000})
	_ = suite.createTestContribution(suite.T(), goal.ID, v1.ContributionEditable{Amount: 100})
	_ = suite.createTestContribution(suite.T(), goal.ID, v1.ContributionEditable{Amount: 200})

	r := suite.request(suite.T(), http.MethodDelete, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.request(suite.T(), http.MethodGet, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var list v1.ListResponse[v1.Contribution]
	suite.get(suite.T(), goal.Links.Contributions, &list)
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestReserve() {
	deposit := suite.createTestReserveTransaction(suite.T(), v1.ReserveTransactionEditable{Amount: 100000, Description: "Depósito"})
	assert.WithinDuration(suite.T(), time.Now(), deposit.Date, time.Minute, "Date must default to now")
	assert.Equal(suite.T(), "http://example.com/v1/emergency-reserve/"+deposit.ID.String(), deposit.Links.Self)

	_ = suite.createTestReserveTransaction(suite.T(), v1.ReserveTransactionEditable{Amount: -20000, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)})

	r := suite.request(suite.T(), http.MethodPost, "http://example.com/v1/emergency-reserve", []v1.ReserveTransactionEditable{{Amount: 0}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), "amount: must not be 0")

	var balance v1.Response[v1.ReserveBalance]
	suite.get(suite.T(), "http://example.com/v1/emergency-reserve/balance", &balance)
	assert.Equal(suite.T(), types.Cents(80000), balance.Data.Balance)

	var list v1.ListResponse[v1.ReserveTransaction]
	suite.get(suite.T(), "http://example.com/v1/emergency-reserve", &list)
	suite.Require().Len(list.Data, 2)
	assert.Equal(suite.T(), deposit.ID, list.Data[0].ID, "Movements must be sorted newest first")

	// Movements cannot be changed
	r = suite.request(suite.T(), http.MethodPatch, deposit.Links.Self, map[string]any{"amount": 5})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)

	r = suite.request(suite.T(), http.MethodDelete, deposit.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	suite.get(suite.T(), "http://example.com/v1/emergency-reserve/balance", &balance)
	assert.Equal(suite.T(), types.Cents(-20000), balance.Data.Balance)
}
