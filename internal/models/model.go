package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultModel is the base model for all models.
type DefaultModel struct {
	ID uuid.UUID `json:"id" gorm:"primaryKey" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the resource
	Timestamps
}

// Timestamps contains the timestamps that gorm sets automatically.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) error {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}

// BeforeCreate generates a UUID for the resource unless one is set.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// OwnedModel is the base model for all resources that belong to a user.
//
// Every query for an owned model must filter by OwnerID.
type OwnedModel struct {
	DefaultModel
	OwnerID uuid.UUID `json:"ownerId" gorm:"index;not null" example:"4e743e94-6a4b-44d6-aba5-d77c87103ff7"` // ID of the user owning the resource
}

// Owned is implemented by all models that belong to a user.
type Owned interface {
	Category | PaymentType | FixedExpense | VariableExpense | Income | ReserveTransaction | Goal | Contribution
}

// TimeNormalizer is implemented by models that store their instants in UTC.
//
// Partial updates bind into a value that gorm hooks never see, so the
// store normalizes that value explicitly.
type TimeNormalizer interface {
	NormalizeTimes()
}

// Registry is a slice of all owned models.
//
// It is maintained so that operations that affect all models do not need to
// explicitly iterate over every single model.
var Registry = []any{
	Category{},
	PaymentType{},
	FixedExpense{},
	VariableExpense{},
	Income{},
	ReserveTransaction{},
	Goal{},
	Contribution{},
}
