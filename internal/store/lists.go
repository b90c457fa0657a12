package store

import (
	"context"
	"time"

	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateRange restricts lists to rows with a date in [Start, End].
//
// The range only applies when both ends are set and Start is not after End.
// Otherwise, lists are not filtered by date.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the range filters anything.
func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.Start.After(r.End)
}

func (r DateRange) scope(q *gorm.DB) *gorm.DB {
	if !r.Valid() {
		return q
	}

	return q.Where("date >= ? AND date <= ?", r.Start.UTC(), r.End.UTC())
}

// Categories returns all categories of owner.
func (s *Store) Categories(ctx context.Context, owner uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	err := s.scoped(ctx, owner).Order("created_at ASC").Find(&categories).Error
	return degrade("categories", categories, []models.Category{}, err)
}

// PaymentTypes returns all payment types of owner.
func (s *Store) PaymentTypes(ctx context.Context, owner uuid.UUID) ([]models.PaymentType, error) {
	var paymentTypes []models.PaymentType
	err := s.scoped(ctx, owner).Order("created_at ASC").Find(&paymentTypes).Error
	return degrade("payment types", paymentTypes, []models.PaymentType{}, err)
}

// FixedExpenses returns all fixed expenses of owner ordered by due day.
func (s *Store) FixedExpenses(ctx context.Context, owner uuid.UUID) ([]models.FixedExpense, error) {
	var expenses []models.FixedExpense
	err := s.scoped(ctx, owner).Order("due_day ASC, created_at ASC").Find(&expenses).Error
	return degrade("fixed expenses", expenses, []models.FixedExpense{}, err)
}

// ActiveFixedExpenses returns the active fixed expenses of owner ordered by due day.
func (s *Store) ActiveFixedExpenses(ctx context.Context, owner uuid.UUID) ([]models.FixedExpense, error) {
	var expenses []models.FixedExpense
	err := s.scoped(ctx, owner).Where("is_active = ?", true).Order("due_day ASC, created_at ASC").Find(&expenses).Error
	return degrade("active fixed expenses", expenses, []models.FixedExpense{}, err)
}

// VariableExpenses returns the variable expenses of owner in r, newest first.
func (s *Store) VariableExpenses(ctx context.Context, owner uuid.UUID, r DateRange) ([]models.VariableExpense, error) {
	var expenses []models.VariableExpense
	err := r.scope(s.scoped(ctx, owner)).Order("date DESC, created_at ASC").Find(&expenses).Error
	return degrade("variable expenses", expenses, []models.VariableExpense{}, err)
}

// Incomes returns the incomes of owner in r, newest first.
func (s *Store) Incomes(ctx context.Context, owner uuid.UUID, r DateRange) ([]models.Income, error) {
	var incomes []models.Income
	err := r.scope(s.scoped(ctx, owner)).Order("date DESC, created_at ASC").Find(&incomes).Error
	return degrade("incomes", incomes, []models.Income{}, err)
}

// ReserveTransactions returns the emergency reserve movements of owner, newest first.
func (s *Store) ReserveTransactions(ctx context.Context, owner uuid.UUID) ([]models.ReserveTransaction, error) {
	var transactions []models.ReserveTransaction
	err := s.scoped(ctx, owner).Order("date DESC, created_at ASC").Find(&transactions).Error
	return degrade("reserve transactions", transactions, []models.ReserveTransaction{}, err)
}

// ReserveBalance returns the sum of all emergency reserve movements of owner.
func (s *Store) ReserveBalance(ctx context.Context, owner uuid.UUID) (types.Cents, error) {
	var balance int64
	err := s.scoped(ctx, owner).Model(&models.ReserveTransaction{}).Select("COALESCE(SUM(amount), 0)").Scan(&balance).Error
	return degrade("reserve balance", types.Cents(balance), 0, err)
}

// Goals returns all savings goals of owner.
func (s *Store) Goals(ctx context.Context, owner uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.scoped(ctx, owner).Order("created_at ASC").Find(&goals).Error
	return degrade("goals", goals, []models.Goal{}, err)
}

// Contributions returns the contributions to a goal of owner, newest first.
func (s *Store) Contributions(ctx context.Context, owner, goalID uuid.UUID) ([]models.Contribution, error) {
	var contributions []models.Contribution
	err := s.scoped(ctx, owner).Where("goal_id = ?", goalID).Order("date DESC, created_at ASC").Find(&contributions).Error
	return degrade("contributions", contributions, []models.Contribution{}, err)
}
