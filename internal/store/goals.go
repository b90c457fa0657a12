package store

import (
	"context"

	"github.com/fincontrol/backend/internal/models"
	"github.com/google/uuid"
)

// GoalForUpdate reads a goal of owner for a read-modify-write cycle.
// It must be called inside of a transaction.
func (s *Store) GoalForUpdate(ctx context.Context, owner, id uuid.UUID) (models.Goal, error) {
	var goal models.Goal
	err := s.locking(s.scoped(ctx, owner)).Where("id = ?", id).First(&goal).Error
	return goal, err
}

// ContributionForUpdate reads a contribution of owner for deletion.
// It must be called inside of a transaction.
func (s *Store) ContributionForUpdate(ctx context.Context, owner, id uuid.UUID) (models.Contribution, error) {
	var contribution models.Contribution
	err := s.locking(s.scoped(ctx, owner)).Where("id = ?", id).First(&contribution).Error
	return contribution, err
}

// SetGoalProgress persists the current amount and the completion flag of a goal.
func (s *Store) SetGoalProgress(ctx context.Context, goal models.Goal) error {
	return s.scoped(ctx, goal.OwnerID).
		Model(&models.Goal{}).
		Where("id = ?", goal.ID).
		Updates(map[string]any{
			"current_amount": goal.CurrentAmount,
			"is_completed":   goal.IsCompleted,
		}).Error
}

// DeleteContributions deletes all contributions to a goal.
func (s *Store) DeleteContributions(ctx context.Context, owner, goalID uuid.UUID) error {
	return s.scoped(ctx, owner).Where("goal_id = ?", goalID).Delete(&models.Contribution{}).Error
}
