// Package goals keeps savings goals consistent with their contributions.
//
// The current amount of a goal is always the sum of its contributions and
// the goal is completed exactly when that amount reaches the target. Every
// write that affects either runs in a single transaction.
package goals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/store"
	"github.com/fincontrol/backend/internal/types"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Engine applies contributions to goals.
type Engine struct {
	store *store.Store
	now   func() time.Time
}

// New returns an engine operating on s.
func New(s *store.Store) *Engine {
	return &Engine{store: s, now: time.Now}
}

// NewContribution is a contribution to be added to a goal.
type NewContribution struct {
	Amount      types.Cents
	Description string
	Date        time.Time // defaults to now
}

// CreateGoal creates a goal without any contributions.
func (e *Engine) CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error) {
	if goal.TargetAmount <= 0 {
		return models.Goal{}, models.ErrGoalTargetNotPositive
	}

	if goal.Icon == "" {
		goal.Icon = models.DefaultGoalIcon
	}

	goal.CurrentAmount = 0
	goal.IsCompleted = goal.Completed()

	err := store.Create(ctx, e.store, &goal)
	return goal, err
}

// AddContribution adds a contribution to the goal with goalID and updates
// the goal's progress.
//
// If owner has no goal with goalID, nothing is written and an error
// wrapping models.ErrResourceNotFound is returned.
func (e *Engine) AddContribution(ctx context.Context, owner, goalID uuid.UUID, c NewContribution) (models.Contribution, models.Goal, error) {
	if c.Amount <= 0 {
		return models.Contribution{}, models.Goal{}, models.ErrContributionNotPositive
	}

	date := c.Date
	if date.IsZero() {
		date = e.now()
	}

	contribution := models.Contribution{
		OwnedModel:  models.OwnedModel{OwnerID: owner},
		GoalID:      goalID,
		Amount:      c.Amount,
		Description: c.Description,
		Date:        date,
	}

	var goal models.Goal
	err := e.store.Transaction(ctx, func(tx *store.Store) error {
		var err error
		goal, err = tx.GoalForUpdate(ctx, owner, goalID)
		if err != nil {
			return err
		}

		err = store.Create(ctx, tx, &contribution)
		if err != nil {
			return err
		}

		goal.CurrentAmount += contribution.Amount
		goal.IsCompleted = goal.Completed()

		return tx.SetGoalProgress(ctx, goal)
	})
	if err != nil {
		return models.Contribution{}, models.Goal{}, fmt.Errorf("adding contribution: %w", err)
	}

	return contribution, goal, nil
}

// DeleteContribution deletes a contribution and reverses its effect on the goal.
//
// The current amount of the goal never drops below zero. Deleting a
// contribution that does not exist for owner is a no-op.
func (e *Engine) DeleteContribution(ctx context.Context, owner, id uuid.UUID) error {
	err := e.store.Transaction(ctx, func(tx *store.Store) error {
		contribution, err := tx.ContributionForUpdate(ctx, owner, id)
		if isNotFound(err) {
			return nil
		} else if err != nil {
			return err
		}

		err = store.Delete[models.Contribution](ctx, tx, owner, id)
		if err != nil {
			return err
		}

		goal, err := tx.GoalForUpdate(ctx, owner, contribution.GoalID)
		if isNotFound(err) {
			return nil
		} else if err != nil {
			return err
		}

		goal.CurrentAmount = max(0, goal.CurrentAmount-contribution.Amount)
		goal.IsCompleted = goal.Completed()

		return tx.SetGoalProgress(ctx, goal)
	})
	if err != nil {
		return fmt.Errorf("deleting contribution: %w", err)
	}

	return nil
}

// UpdateGoal updates the named fields of a goal. The current amount and the
// completion flag cannot be updated, the flag is recomputed when the target
// changes. It reports false when owner has no goal with id.
func (e *Engine) UpdateGoal(ctx context.Context, owner, id uuid.UUID, fields []string, values models.Goal) (models.Goal, bool, error) {
	fields = slices.DeleteFunc(slices.Clone(fields), func(f string) bool {
		return f == "CurrentAmount" || f == "IsCompleted"
	})

	retarget := slices.Contains(fields, "TargetAmount")
	if retarget && values.TargetAmount <= 0 {
		return models.Goal{}, false, models.ErrGoalTargetNotPositive
	}

	var (
		goal  models.Goal
		found bool
	)
	err := e.store.Transaction(ctx, func(tx *store.Store) error {
		var err error
		goal, found, err = store.Update(ctx, tx, owner, id, fields, values)
		if err != nil || !found || !retarget {
			return err
		}

		goal.IsCompleted = goal.Completed()
		return tx.SetGoalProgress(ctx, goal)
	})
	if err != nil {
		return models.Goal{}, false, fmt.Errorf("updating goal: %w", err)
	}

	return goal, found, nil
}

// DeleteGoal deletes a goal together with all its contributions.
func (e *Engine) DeleteGoal(ctx context.Context, owner, id uuid.UUID) error {
	return e.store.Transaction(ctx, func(tx *store.Store) error {
		err := tx.DeleteContributions(ctx, owner, id)
		if err != nil {
			return err
		}

		return store.Delete[models.Goal](ctx, tx, owner, id)
	})
}

// Contributions returns the contributions to a goal, newest first.
// For a goal that does not exist, the list is empty.
func (e *Engine) Contributions(ctx context.Context, owner, goalID uuid.UUID) ([]models.Contribution, error) {
	return e.store.Contributions(ctx, owner, goalID)
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrResourceNotFound)
}
