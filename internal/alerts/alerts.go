// Package alerts finds fixed expenses that are due soon.
package alerts

import (
	"context"
	"time"

	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/types"
	"github.com/google/uuid"
)

// Window is the number of days after today in which expenses are reported.
const Window = 3

// Alert is a fixed expense with its due date in the queried month.
type Alert struct {
	models.FixedExpense
	DueDate time.Time `json:"dueDate" example:"2024-03-10T00:00:00-03:00"`
}

// Upcoming returns the expenses due between today and Window days later,
// both inclusive, at day granularity.
//
// Due dates are computed in month. A due day past the end of the month
// rolls over into the next month. Inactive expenses are not skipped.
func Upcoming(expenses []models.FixedExpense, month types.Month, now time.Time, loc *time.Location) []Alert {
	today := types.StartOfDay(now, loc)
	last := today.AddDate(0, 0, Window)

	alerts := make([]Alert, 0)
	for _, e := range expenses {
		due := month.Day(e.DueDay, loc)
		if due.Before(today) || due.After(last) {
			continue
		}

		alerts = append(alerts, Alert{FixedExpense: e, DueDate: due})
	}

	return alerts
}

// Reader reads fixed expenses.
type Reader interface {
	FixedExpenses(ctx context.Context, owner uuid.UUID) ([]models.FixedExpense, error)
}

// Filter finds upcoming due dates of an owner.
type Filter struct {
	reader   Reader
	location *time.Location
	now      func() time.Time
}

// New returns a Filter that determines today in loc.
func New(r Reader, loc *time.Location) *Filter {
	return &Filter{reader: r, location: loc, now: time.Now}
}

// WithClock returns a copy of the filter using now as clock.
func (f *Filter) WithClock(now func() time.Time) *Filter {
	c := *f
	c.now = now
	return &c
}

// Upcoming returns all fixed expenses of owner that are due soon in month.
func (f *Filter) Upcoming(ctx context.Context, owner uuid.UUID, month types.Month) ([]Alert, error) {
	expenses, err := f.reader.FixedExpenses(ctx, owner)
	if err != nil {
		return nil, err
	}

	return Upcoming(expenses, month, f.now(), f.location), nil
}
