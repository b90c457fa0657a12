// Package dashboard summarizes the finances of a month.
package dashboard

import (
	"cmp"

	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Fallbacks for expenses referencing a category that does not exist.
const (
	UnknownCategoryName = "Desconhecida"
	UnknownCategoryIcon = "📌"
)

var hundred = decimal.NewFromInt(100)

// Input is everything a summary is computed from.
type Input struct {
	Month            types.Month
	FixedExpenses    []models.FixedExpense
	VariableExpenses []models.VariableExpense // only those in the month
	Incomes          []models.Income          // only those in the month
	Categories       []models.Category
	ReserveBalance   types.Cents
}

// CategoryAmount is the amount spent on a category.
type CategoryAmount struct {
	CategoryID   uuid.UUID       `json:"categoryId" example:"0a4b2d1b-5dc4-4e62-8d3c-9a3b0fbb1e36"`
	CategoryName string          `json:"categoryName" example:"Moradia"`
	CategoryIcon string          `json:"categoryIcon" example:"🏠"`
	Amount       types.Cents     `json:"amount" example:"150000"`
	Percentage   decimal.Decimal `json:"percentage" example:"62.5" swaggertype:"string"` // Share of total expenses, rounded to 4 decimal places
}

// Summary is the dashboard of a month. All amounts are in cents.
type Summary struct {
	Month                 types.Month      `json:"month" swaggertype:"string" example:"2024-03"`
	TotalFixedExpenses    types.Cents      `json:"totalFixedExpenses" example:"240000"`
	TotalVariableExpenses types.Cents      `json:"totalVariableExpenses" example:"84050"`
	TotalExpenses         types.Cents      `json:"totalExpenses" example:"324050"`
	TotalIncomes          types.Cents      `json:"totalIncomes" example:"500000"`
	Balance               types.Cents      `json:"balance" example:"175950"`
	ReserveBalance        types.Cents      `json:"reserveBalance" example:"1000000"`
	BalanceWithReserve    types.Cents      `json:"balanceWithReserve" example:"1175950"`
	CategoryBreakdown     []CategoryAmount `json:"categoryBreakdown"`
}

// Aggregate computes the summary. Inactive fixed expenses are ignored.
//
// The category breakdown is sorted by amount, descending. Categories with the
// same amount keep the order in which they first appear in the fixed
// expenses, then the variable expenses.
func Aggregate(in Input) Summary {
	s := Summary{
		Month:          in.Month,
		ReserveBalance: in.ReserveBalance,
	}

	var order []uuid.UUID
	buckets := make(map[uuid.UUID]types.Cents)
	add := func(category uuid.UUID, amount types.Cents) {
		if _, ok := buckets[category]; !ok {
			order = append(order, category)
		}
		buckets[category] += amount
	}

	for _, e := range in.FixedExpenses {
		if !e.IsActive {
			continue
		}
		s.TotalFixedExpenses += e.Amount
		add(e.CategoryID, e.Amount)
	}

	for _, e := range in.VariableExpenses {
		s.TotalVariableExpenses += e.Amount
		add(e.CategoryID, e.Amount)
	}

	for _, i := range in.Incomes {
		s.TotalIncomes += i.Amount
	}

	s.TotalExpenses = s.TotalFixedExpenses + s.TotalVariableExpenses
	s.Balance = s.TotalIncomes - s.TotalExpenses
	s.BalanceWithReserve = s.Balance + s.ReserveBalance

	categories := make(map[uuid.UUID]models.Category, len(in.Categories))
	for _, c := range in.Categories {
		categories[c.ID] = c
	}

	s.CategoryBreakdown = make([]CategoryAmount, 0, len(order))
	for _, id := range order {
		amount := buckets[id]
		if amount == 0 {
			continue
		}

		entry := CategoryAmount{
			CategoryID:   id,
			CategoryName: UnknownCategoryName,
			CategoryIcon: UnknownCategoryIcon,
			Amount:       amount,
			Percentage:   percentage(amount, s.TotalExpenses),
		}

		if c, ok := categories[id]; ok {
			entry.CategoryName = c.Name
			entry.CategoryIcon = c.Icon
		}

		s.CategoryBreakdown = append(s.CategoryBreakdown, entry)
	}

	slices.SortStableFunc(s.CategoryBreakdown, func(a, b CategoryAmount) int {
		return cmp.Compare(b.Amount, a.Amount)
	})

	return s
}

// percentage returns amount as percentage of total, rounded to 4 places.
func percentage(amount, total types.Cents) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(int64(amount)).Mul(hundred).DivRound(decimal.NewFromInt(int64(total)), 4)
}
