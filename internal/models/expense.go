package models

import (
	"time"

	"github.com/fincontrol/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FixedExpense is an expense that recurs every month on DueDay.
type FixedExpense struct {
	OwnedModel
	Name       string      `json:"name" gorm:"size:200;not null"`
	CategoryID uuid.UUID   `json:"categoryId" gorm:"index"`
	Amount     types.Cents `json:"amount"`
	DueDay     int         `json:"dueDay"`
	IsActive   bool        `json:"isActive"`
}

// VariableExpense is a one-off expense, possibly one installment of a purchase.
type VariableExpense struct {
	OwnedModel
	Name               string      `json:"name" gorm:"size:200;not null"`
	CategoryID         uuid.UUID   `json:"categoryId" gorm:"index"`
	Amount             types.Cents `json:"amount"`
	PaymentTypeID      *uuid.UUID  `json:"paymentTypeId"`
	Date               time.Time   `json:"date" gorm:"index"`
	Installments       int         `json:"installments"`
	CurrentInstallment int         `json:"currentInstallment"`
	IsPaid             bool        `json:"isPaid"`
	Notes              string      `json:"notes"`
}

func (e *VariableExpense) BeforeSave(_ *gorm.DB) error {
	e.NormalizeTimes()
	return nil
}

func (e *VariableExpense) NormalizeTimes() {
	e.Date = e.Date.UTC()
}

func (e *VariableExpense) AfterFind(tx *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return e.DefaultModel.AfterFind(tx)
}

// Income is money received.
type Income struct {
	OwnedModel
	Name        string      `json:"name" gorm:"size:200;not null"`
	Amount      types.Cents `json:"amount"`
	Date        time.Time   `json:"date" gorm:"index"`
	IsRecurring bool        `json:"isRecurring"`
	Notes       string      `json:"notes"`
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.NormalizeTimes()
	return nil
}

func (i *Income) NormalizeTimes() {
	i.Date = i.Date.UTC()
}

func (i *Income) AfterFind(tx *gorm.DB) error {
	i.Date = i.Date.In(time.UTC)
	return i.DefaultModel.AfterFind(tx)
}

// ReserveTransaction is a movement of the emergency reserve.
// Positive amounts are deposits, negative amounts withdrawals.
type ReserveTransaction struct {
	OwnedModel
	Amount      types.Cents `json:"amount"`
	Date        time.Time   `json:"date" gorm:"index"`
	Description string      `json:"description"`
}

func (r *ReserveTransaction) BeforeSave(_ *gorm.DB) error {
	r.NormalizeTimes()
	return nil
}

func (r *ReserveTransaction) NormalizeTimes() {
	r.Date = r.Date.UTC()
}

func (r *ReserveTransaction) AfterFind(tx *gorm.DB) error {
	r.Date = r.Date.In(time.UTC)
	return r.DefaultModel.AfterFind(tx)
}
