package store

import (
	"context"

	"github.com/fincontrol/backend/internal/models"
	"github.com/google/uuid"
)

// Snapshot contains all resources of an owner.
type Snapshot struct {
	Categories          []models.Category           `json:"categories"`
	PaymentTypes        []models.PaymentType        `json:"paymentTypes"`
	FixedExpenses       []models.FixedExpense       `json:"fixedExpenses"`
	VariableExpenses    []models.VariableExpense    `json:"variableExpenses"`
	Incomes             []models.Income             `json:"incomes"`
	ReserveTransactions []models.ReserveTransaction `json:"emergencyReserve"`
	Goals               []models.Goal               `json:"goals"`
	Contributions       []models.Contribution       `json:"contributions"`
}

// Snapshot reads all resources of owner in one transaction.
//
// Unlike the list operations, it fails when the database is unavailable
// instead of returning empty lists.
func (s *Store) Snapshot(ctx context.Context, owner uuid.UUID) (Snapshot, error) {
	var snap Snapshot

	err := s.Transaction(ctx, func(tx *Store) error {
		for _, read := range []struct {
			dest  any
			order string
		}{
			{&snap.Categories, "created_at ASC"},
			{&snap.PaymentTypes, "created_at ASC"},
			{&snap.FixedExpenses, "due_day ASC, created_at ASC"},
			{&snap.VariableExpenses, "date DESC, created_at ASC"},
			{&snap.Incomes, "date DESC, created_at ASC"},
			{&snap.ReserveTransactions, "date DESC, created_at ASC"},
			{&snap.Goals, "created_at ASC"},
			{&snap.Contributions, "date DESC, created_at ASC"},
		} {
			if err := tx.scoped(ctx, owner).Order(read.order).Find(read.dest).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return snap, err
}
