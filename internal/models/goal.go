package models

import (
	"errors"
	"time"

	"github.com/fincontrol/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultGoalIcon is used for goals created without an icon.
const DefaultGoalIcon = "🎯"

var (
	ErrGoalTargetNotPositive   = errors.New("the target amount of a goal must be positive")
	ErrContributionNotPositive = errors.New("the amount of a contribution must be positive")
)

// Goal is a savings goal.
//
// CurrentAmount is the sum of all contributions and IsCompleted is
// derived from it. Both are only written by the goals engine.
type Goal struct {
	OwnedModel
	Name          string      `json:"name" gorm:"size:200;not null"`
	Description   string      `json:"description"`
	TargetAmount  types.Cents `json:"targetAmount"`
	CurrentAmount types.Cents `json:"currentAmount"`
	Deadline      *time.Time  `json:"deadline"`
	Icon          string      `json:"icon" gorm:"size:10"`
	IsCompleted   bool        `json:"isCompleted"`
}

// Completed reports whether the current amount reaches the target.
func (g Goal) Completed() bool {
	return g.CurrentAmount >= g.TargetAmount
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.NormalizeTimes()
	return nil
}

func (g *Goal) NormalizeTimes() {
	if g.Deadline != nil {
		d := g.Deadline.UTC()
		g.Deadline = &d
	}
}

// Contribution is an amount of money put towards a goal.
type Contribution struct {
	OwnedModel
	GoalID      uuid.UUID   `json:"goalId" gorm:"index;not null"`
	Amount      types.Cents `json:"amount"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
}

func (c *Contribution) BeforeSave(_ *gorm.DB) error {
	if c.Amount <= 0 {
		return ErrContributionNotPositive
	}

	c.NormalizeTimes()
	return nil
}

func (c *Contribution) NormalizeTimes() {
	c.Date = c.Date.UTC()
}

func (c *Contribution) AfterFind(tx *gorm.DB) error {
	c.Date = c.Date.In(time.UTC)
	return c.DefaultModel.AfterFind(tx)
}
