package v1_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/fincontrol/backend/internal/auth"
	v1 "github.com/fincontrol/backend/internal/controllers/v1"
	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "not-so-secret"

// bearer returns the Authorization header for owner.
func bearer(t *testing.T, owner uuid.UUID) map[string]string {
	token, err := auth.GenerateToken(testSecret, owner, time.Hour)
	require.Nil(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

// TestOwnerIsolation verifies that no owner can see or change
// the resources of another owner.
func (suite *TestSuiteStandard) TestOwnerIsolation() {
	h := suite.jwtEngine(testSecret)
	alice, bob := uuid.New(), uuid.New()

	r := test.Request(suite.T(), h, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{Name: "Moradia"}}, bearer(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var categories v1.CreateResponse[v1.Category]
	test.DecodeResponse(suite.T(), &r, &categories)
	category := categories.Data[0].Data
	assert.Equal(suite.T(), alice, category.OwnerID)

	r = test.Request(suite.T(), h, http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{{Name: "Viagem", TargetAmount: 1000}}, bearer(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var goals v1.CreateResponse[v1.Goal]
	test.DecodeResponse(suite.T(), &r, &goals)
	goal := goals.Data[0].Data

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"List", http.MethodGet, "/v1/categories", "", http.StatusOK},
		{"Get", http.MethodGet, "/v1/categories/" + category.ID.String(), "", http.StatusNotFound},
		{"Options", http.MethodOptions, "/v1/categories/" + category.ID.String(), "", http.StatusNotFound},
		{"Update", http.MethodPatch, "/v1/categories/" + category.ID.String(), map[string]any{"name": "Casa"}, http.StatusNoContent},
		{"Delete", http.MethodDelete, "/v1/categories/" + category.ID.String(), "", http.StatusNoContent},
		{"Contribute", http.MethodPost, "/v1/goals/" + goal.ID.String() + "/contributions", []v1.ContributionEditable{{Amount: 500}}, http.StatusNotFound},
		{"Update goal", http.MethodPatch, "/v1/goals/" + goal.ID.String(), map[string]any{"targetAmount": 1}, http.StatusNoContent},
		{"Delete goal", http.MethodDelete, "/v1/goals/" + goal.ID.String(), "", http.StatusNoContent},
		{"Cleanup", http.MethodDelete, "/v1?confirm=yes-please-delete-everything", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, h, tt.method, "http://example.com"+tt.path, tt.body, bearer(t, bob))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	var list v1.ListResponse[v1.Category]
	r = test.Request(suite.T(), h, http.MethodGet, "http://example.com/v1/categories", "", bearer(suite.T(), bob))
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)

	// Nothing of alice has changed
	r = test.Request(suite.T(), h, http.MethodGet, "http://example.com/v1/categories/"+category.ID.String(), "", bearer(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var stored v1.Response[v1.Category]
	test.DecodeResponse(suite.T(), &r, &stored)
	assert.Equal(suite.T(), "Moradia", stored.Data.Name)

	r = test.Request(suite.T(), h, http.MethodGet, "http://example.com/v1/goals/"+goal.ID.String(), "", bearer(suite.T(), alice))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var storedGoal v1.Response[v1.Goal]
	test.DecodeResponse(suite.T(), &r, &storedGoal)
	assert.Equal(suite.T(), goal.TargetAmount, storedGoal.Data.TargetAmount)
	assert.Equal(suite.T(), goal.CurrentAmount, storedGoal.Data.CurrentAmount)
}

func (suite *TestSuiteStandard) TestAuthentication() {
	h := suite.jwtEngine(testSecret)

	user, err := suite.store.EnsureUser(context.Background(), models.User{OpenID: "auth0|1234", Name: "Maria"})
	suite.Require().Nil(err)

	tests := []struct {
		name    string
		url     string
		headers map[string]string
		status  int
	}{
		{"No token", "http://example.com/v1/me", nil, http.StatusUnauthorized},
		{"Invalid token", "http://example.com/v1/me", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized},
		{"Header", "http://example.com/v1/me", bearer(suite.T(), user.ID), http.StatusOK},
		{"Unknown user", "http://example.com/v1/me", bearer(suite.T(), uuid.New()), http.StatusNotFound},
		{"Root needs no token", "http://example.com/", nil, http.StatusOK},
		{"OPTIONS needs no token", "http://example.com/v1", nil, http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			method := http.MethodGet
			if tt.name == "OPTIONS needs no token" {
				method = http.MethodOptions
			}

			headers := []map[string]string{}
			if tt.headers != nil {
				headers = append(headers, tt.headers)
			}

			r := test.Request(t, h, method, tt.url, "", headers...)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	token, err := auth.GenerateToken(testSecret, user.ID, time.Hour)
	suite.Require().Nil(err)

	r := test.Request(suite.T(), h, http.MethodGet, "http://example.com/v1/export?token="+token, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

// TestDatabaseClosed verifies that reads degrade to empty results and
// writes fail with HTTP 503 when the database is unavailable.
func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	for _, path := range []string{"/v1/categories", "/v1/fixed-expenses", "/v1/variable-expenses", "/v1/goals"} {
		suite.T().Run("GET "+path, func(t *testing.T) {
			var response v1.ListResponse[v1.Category]
			suite.get(t, "http://example.com"+path, &response)
			assert.Len(t, response.Data, 0)
			assert.Nil(t, response.Error)
		})
	}

	suite.T().Run("Balance", func(t *testing.T) {
		var response v1.Response[v1.ReserveBalance]
		suite.get(t, "http://example.com/v1/emergency-reserve/balance", &response)
		assert.Equal(t, v1.ReserveBalance{}, *response.Data)
	})

	suite.T().Run("Create", func(t *testing.T) {
		r := suite.createTestCategory(t, v1.CategoryEditable{Name: "Moradia"}, http.StatusServiceUnavailable)
		assert.Equal(t, uuid.Nil, r.ID)

		r2 := suite.request(t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{Name: "Moradia"}})
		assert.Contains(t, r2.Body.String(), models.ErrUnavailable.Error())
	})

	suite.T().Run("Export", func(t *testing.T) {
		r := suite.request(t, http.MethodGet, "http://example.com/v1/export", "")
		test.AssertHTTPStatus(t, &r, http.StatusServiceUnavailable)
	})

	suite.T().Run("Dashboard", func(t *testing.T) {
		var response v1.Response[dashboardSummary]
		suite.get(t, "http://example.com/v1/dashboard?month=3&year=2024", &response)
		assert.Equal(t, int64(0), response.Data.TotalExpenses)
	})
}

type dashboardSummary struct {
	TotalExpenses int64 `json:"totalExpenses"`
}
