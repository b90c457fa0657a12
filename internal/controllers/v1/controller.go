// Package v1 implements the HTTP API for version 1.
package v1

import (
	"time"

	"github.com/fincontrol/backend/internal/alerts"
	"github.com/fincontrol/backend/internal/dashboard"
	"github.com/fincontrol/backend/internal/export"
	"github.com/fincontrol/backend/internal/goals"
	"github.com/fincontrol/backend/internal/store"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// Controller holds the components that the handlers use.
type Controller struct {
	Store     *store.Store
	Goals     *goals.Engine
	Dashboard *dashboard.Aggregator
	Alerts    *alerts.Filter
	Exporter  *export.Exporter

	// Location is used for month windows and for dates sent without a time
	Location *time.Location
	now      func() time.Time
}

// New wires a Controller for s.
func New(s *store.Store, loc *time.Location, locale language.Tag) Controller {
	return Controller{
		Store:     s,
		Goals:     goals.New(s),
		Dashboard: dashboard.New(s, loc),
		Alerts:    alerts.New(s, loc),
		Exporter:  export.New(loc, locale),
		Location:  loc,
		now:       time.Now,
	}
}

// RegisterRoutes registers all resources with the v1 group.
func (co Controller) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.DELETE("", co.Cleanup)

	co.RegisterCategoryRoutes(v1.Group("/categories"))
	co.RegisterPaymentTypeRoutes(v1.Group("/payment-types"))
	co.RegisterFixedExpenseRoutes(v1.Group("/fixed-expenses"))
	co.RegisterVariableExpenseRoutes(v1.Group("/variable-expenses"))
	co.RegisterIncomeRoutes(v1.Group("/incomes"))
	co.RegisterReserveRoutes(v1.Group("/emergency-reserve"))
	co.RegisterGoalRoutes(v1.Group("/goals"))
	co.RegisterContributionRoutes(v1.Group("/contributions"))
	co.RegisterDashboardRoutes(v1.Group("/dashboard"))
	co.RegisterAlertRoutes(v1.Group("/alerts"))
	co.RegisterExportRoutes(v1.Group("/export"))
	co.RegisterMeRoutes(v1.Group("/me"))
}

func (co Controller) today() time.Time {
	if co.now == nil {
		return time.Now()
	}
	return co.now()
}
