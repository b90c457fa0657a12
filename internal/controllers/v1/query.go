package v1

import (
	"time"

	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/store"
	"github.com/fincontrol/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// QueryDateRange filters lists by date. Both dates are inclusive.
type QueryDateRange struct {
	StartDate string `form:"startDate" example:"2024-03-01"` // First date, as YYYY-MM-DD or RFC 3339 timestamp
	EndDate   string `form:"endDate" example:"2024-03-31"`   // Last date, as YYYY-MM-DD or RFC 3339 timestamp
}

// QueryMonth selects a month. It defaults to the current month.
type QueryMonth struct {
	Month int `form:"month" example:"3" binding:"omitempty,min=1,max=12"`        // Month, 1 to 12
	Year  int `form:"year" example:"2024" binding:"omitempty,min=1970,max=9999"` // Year
}

// dateRange parses the date range from the query string.
//
// A range that is incomplete or ends before it starts does not filter.
func (co Controller) dateRange(c *gin.Context) (store.DateRange, error) {
	var q QueryDateRange

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&q)

	var (
		r   store.DateRange
		err error
	)

	if q.StartDate != "" {
		r.Start, err = types.ParseTime(q.StartDate, co.Location)
		if err != nil {
			return r, httputil.Invalid("startDate", "must be a date as YYYY-MM-DD or an RFC 3339 timestamp")
		}
	}

	if q.EndDate != "" {
		r.End, err = types.ParseTime(q.EndDate, co.Location)
		if err != nil {
			return r, httputil.Invalid("endDate", "must be a date as YYYY-MM-DD or an RFC 3339 timestamp")
		}

		// A date without time includes the whole day
		if len(q.EndDate) == len(time.DateOnly) {
			r.End = r.End.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
	}

	return r, nil
}

// month parses the month from the query string.
func (co Controller) month(c *gin.Context) (types.Month, error) {
	var q QueryMonth
	if err := c.ShouldBindQuery(&q); err != nil {
		return types.Month{}, httputil.TranslateQuery(err)
	}

	now := types.MonthOf(co.today().In(co.Location))
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	if q.Year == 0 {
		q.Year = now.Year()
	}

	return types.NewMonth(q.Year, time.Month(q.Month)), nil
}
