package export

import (
	"github.com/fincontrol/backend/internal/store"
)

type table struct {
	name   string
	header []string
	rows   [][]any
}

func tables(s store.Snapshot) []table {
	categories := table{name: "categories", header: []string{"id", "name", "icon"}}
	for _, c := range s.Categories {
		categories.rows = append(categories.rows, []any{c.ID, c.Name, c.Icon})
	}

	paymentTypes := table{name: "paymentTypes", header: []string{"id", "name"}}
	for _, p := range s.PaymentTypes {
		paymentTypes.rows = append(paymentTypes.rows, []any{p.ID, p.Name})
	}

	fixed := table{name: "fixedExpenses", header: []string{"id", "name", "categoryId", "amount", "dueDay", "isActive"}}
	for _, e := range s.FixedExpenses {
		fixed.rows = append(fixed.rows, []any{e.ID, e.Name, e.CategoryID, e.Amount, e.DueDay, e.IsActive})
	}

	variable := table{name: "variableExpenses", header: []string{"id", "name", "categoryId", "paymentTypeId", "amount", "date", "installments", "currentInstallment", "isPaid", "notes"}}
	for _, e := range s.VariableExpenses {
		variable.rows = append(variable.rows, []any{e.ID, e.Name, e.CategoryID, e.PaymentTypeID, e.Amount, e.Date, e.Installments, e.CurrentInstallment, e.IsPaid, e.Notes})
	}

	incomes := table{name: "incomes", header: []string{"id", "name", "amount", "date", "isRecurring", "notes"}}
	for _, i := range s.Incomes {
		incomes.rows = append(incomes.rows, []any{i.ID, i.Name, i.Amount, i.Date, i.IsRecurring, i.Notes})
	}

	reserve := table{name: "emergencyReserve", header: []string{"id", "amount", "date", "description"}}
	for _, r := range s.ReserveTransactions {
		reserve.rows = append(reserve.rows, []any{r.ID, r.Amount, r.Date, r.Description})
	}

	goals := table{name: "goals", header: []string{"id", "name", "description", "targetAmount", "currentAmount", "deadline", "icon", "isCompleted"}}
	for _, g := range s.Goals {
		goals.rows = append(goals.rows, []any{g.ID, g.Name, g.Description, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Icon, g.IsCompleted})
	}

	contributions := table{name: "contributions", header: []string{"id", "goalId", "amount", "date", "description"}}
	for _, c := range s.Contributions {
		contributions.rows = append(contributions.rows, []any{c.ID, c.GoalID, c.Amount, c.Date, c.Description})
	}

	return []table{categories, paymentTypes, fixed, variable, incomes, reserve, goals, contributions}
}
