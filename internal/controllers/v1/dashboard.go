package v1

import (
	"net/http"

	"github.com/fincontrol/backend/internal/alerts"
	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/dashboard"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsDashboard)
	r.GET("", co.GetDashboard)
}

func (co Controller) RegisterAlertRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/upcoming-due-dates", co.OptionsUpcomingDueDates)
	r.GET("/upcoming-due-dates", co.GetUpcomingDueDates)
}

// OptionsDashboard returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Dashboard
//	@Success		204
//	@Router			/v1/dashboard [options]
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetDashboard returns the summary of a month
//
//	@Summary		Get dashboard
//	@Description	Returns the totals, balances and expenses per category for a month. If the database is unavailable, the summary is computed without the missing data.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200		{object}	Response[dashboard.Summary]
//	@Failure		400		{object}	Response[dashboard.Summary]
//	@Param			month	query		int	false	"Month, 1 to 12. Defaults to the current month"
//	@Param			year	query		int	false	"Year. Defaults to the current year"
//	@Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	month, err := co.month(c)
	if err != nil {
		c.JSON(status(err), Response[dashboard.Summary]{Error: errorString(err)})
		return
	}

	summary, err := co.Dashboard.Summary(c.Request.Context(), auth.Owner(c), month)
	if err != nil {
		c.JSON(status(err), Response[dashboard.Summary]{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, Response[dashboard.Summary]{Data: &summary})
}

// OptionsUpcomingDueDates returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Dashboard
//	@Success		204
//	@Router			/v1/alerts/upcoming-due-dates [options]
func (co Controller) OptionsUpcomingDueDates(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetUpcomingDueDates returns the fixed expenses that are due soon
//
//	@Summary		Get upcoming due dates
//	@Description	Returns the fixed expenses whose due date in the given month is between today and three days from today
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200		{object}	ListResponse[alerts.Alert]
//	@Failure		400		{object}	ListResponse[alerts.Alert]
//	@Param			month	query		int	false	"Month, 1 to 12. Defaults to the current month"
//	@Param			year	query		int	false	"Year. Defaults to the current year"
//	@Router			/v1/alerts/upcoming-due-dates [get]
func (co Controller) GetUpcomingDueDates(c *gin.Context) {
	month, err := co.month(c)
	if err != nil {
		c.JSON(status(err), ListResponse[alerts.Alert]{Error: errorString(err)})
		return
	}

	upcoming, err := co.Alerts.Upcoming(c.Request.Context(), auth.Owner(c), month)
	if err != nil {
		c.JSON(status(err), ListResponse[alerts.Alert]{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, ListResponse[alerts.Alert]{Data: upcoming})
}
