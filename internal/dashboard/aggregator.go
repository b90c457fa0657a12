package dashboard

import (
	"context"
	"time"

	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/store"
	"github.com/fincontrol/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Reader reads the data a summary is computed from.
type Reader interface {
	ActiveFixedExpenses(ctx context.Context, owner uuid.UUID) ([]models.FixedExpense, error)
	VariableExpenses(ctx context.Context, owner uuid.UUID, r store.DateRange) ([]models.VariableExpense, error)
	Incomes(ctx context.Context, owner uuid.UUID, r store.DateRange) ([]models.Income, error)
	Categories(ctx context.Context, owner uuid.UUID) ([]models.Category, error)
	ReserveBalance(ctx context.Context, owner uuid.UUID) (types.Cents, error)
}

// Aggregator computes monthly summaries.
type Aggregator struct {
	reader   Reader
	location *time.Location
}

// New returns an Aggregator. Months start and end at midnight in loc.
func New(r Reader, loc *time.Location) *Aggregator {
	return &Aggregator{reader: r, location: loc}
}

// Summary computes the summary of month for owner.
//
// All reads run concurrently. Their results are only combined once
// all of them have completed.
func (a *Aggregator) Summary(ctx context.Context, owner uuid.UUID, month types.Month) (Summary, error) {
	start, end := month.Window(a.location)
	window := store.DateRange{Start: start, End: end}

	in := Input{Month: month}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		in.FixedExpenses, err = a.reader.ActiveFixedExpenses(ctx, owner)
		return
	})

	g.Go(func() (err error) {
		in.VariableExpenses, err = a.reader.VariableExpenses(ctx, owner, window)
		return
	})

	g.Go(func() (err error) {
		in.Incomes, err = a.reader.Incomes(ctx, owner, window)
		return
	})

	g.Go(func() (err error) {
		in.Categories, err = a.reader.Categories(ctx, owner)
		return
	})

	g.Go(func() (err error) {
		in.ReserveBalance, err = a.reader.ReserveBalance(ctx, owner)
		return
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Aggregate(in), nil
}
