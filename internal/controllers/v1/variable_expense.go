package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// VariableExpenseEditable represents all user configurable parameters
type VariableExpenseEditable struct {
	Name               string      `json:"name" example:"Mercado" binding:"required,notblank,max=200"`                   // Name of the expense
	CategoryID         uuid.UUID   `json:"categoryId" example:"5e2b0a4c-8f57-4a43-9a1f-38a8e7d1b0c1" binding:"required"` // ID of the category
	Amount             types.Cents `json:"amount" example:"25990" binding:"gte=0"`                                       // Amount in cents
	PaymentTypeID      *uuid.UUID  `json:"paymentTypeId" example:"0f1b1d55-2f0e-4d1a-9b1a-6c8b0c8e2a10"`                 // ID of the payment type used
	Date               time.Time   `json:"date" example:"2024-03-15T12:00:00Z" binding:"required"`                       // Date of the expense
	Installments       int         `json:"installments" example:"10" default:"1" binding:"min=1"`                        // Number of installments of the purchase
	CurrentInstallment int         `json:"currentInstallment" example:"3" default:"1" binding:"min=1"`                   // The installment this expense is
	IsPaid             bool        `json:"isPaid" example:"false" default:"false"`                                       // Has the expense been paid?
	Notes              string      `json:"notes" example:"Compra do mês" binding:"max=1000"`                             // Notes about the expense
}

// UnmarshalJSON sets the defaults for fields missing in the data.
func (editable *VariableExpenseEditable) UnmarshalJSON(data []byte) error {
	type plain VariableExpenseEditable
	p := plain{Installments: 1, CurrentInstallment: 1}

	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*editable = VariableExpenseEditable(p)
	return nil
}

// check verifies that the current installment is not after the last
// one. This is only possible when both are known.
func (editable VariableExpenseEditable) check(fields []string) error {
	if fields != nil && (!slices.Contains(fields, "Installments") || !slices.Contains(fields, "CurrentInstallment")) {
		return nil
	}

	if editable.CurrentInstallment > editable.Installments {
		return httputil.Invalid("currentInstallment", "must not be greater than installments")
	}
	return nil
}

func (editable VariableExpenseEditable) model(owner uuid.UUID) models.VariableExpense {
	return models.VariableExpense{
		OwnedModel:         models.OwnedModel{OwnerID: owner},
		Name:               editable.Name,
		CategoryID:         editable.CategoryID,
		Amount:             editable.Amount,
		PaymentTypeID:      editable.PaymentTypeID,
		Date:               editable.Date,
		Installments:       editable.Installments,
		CurrentInstallment: editable.CurrentInstallment,
		IsPaid:             editable.IsPaid,
		Notes:              editable.Notes,
	}
}

type VariableExpense struct {
	models.VariableExpense
	Links Links `json:"links"`
}

func newVariableExpense(c *gin.Context, model models.VariableExpense) VariableExpense {
	return VariableExpense{
		VariableExpense: model,
		Links: Links{
			Self: link(c, "/v1/variable-expenses/%s", model.ID),
		},
	}
}

// RegisterVariableExpenseRoutes registers the routes for variable expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterVariableExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsVariableExpenseList)
		r.GET("", co.GetVariableExpenses)
		r.POST("", co.CreateVariableExpenses)
	}

	{
		r.OPTIONS("/:id", co.OptionsVariableExpenseDetail)
		r.GET("/:id", co.GetVariableExpense)
		r.PATCH("/:id", co.UpdateVariableExpense)
		r.DELETE("/:id", co.DeleteVariableExpense)
	}
}

// OptionsVariableExpenseList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Variable Expenses
//	@Success		204
//	@Router			/v1/variable-expenses [options]
func (co Controller) OptionsVariableExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsVariableExpenseDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Variable Expenses
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/variable-expenses/{id} [options]
func (co Controller) OptionsVariableExpenseDetail(c *gin.Context) {
	resourceOptionsDetail[models.VariableExpense](c, co.Store, httputil.OptionsGetPatchDelete)
}

// CreateVariableExpenses creates variable expenses
//
//	@Summary		Create variable expenses
//	@Description	Creates new variable expenses
//	@Tags			Variable Expenses
//	@Produce		json
//	@Success		201					{object}	CreateResponse[VariableExpense]
//	@Failure		400					{object}	CreateResponse[VariableExpense]
//	@Failure		503					{object}	CreateResponse[VariableExpense]
//	@Param			variableExpenses	body		[]VariableExpenseEditable	true	"Variable expenses"
//	@Router			/v1/variable-expenses [post]
func (co Controller) CreateVariableExpenses(c *gin.Context) {
	createResources[models.VariableExpense, VariableExpenseEditable](c, storeInserter[models.VariableExpense](co.Store), newVariableExpense)
}

// GetVariableExpenses returns variable expenses
//
//	@Summary		Get variable expenses
//	@Description	Returns the variable expenses, newest first. When both startDate and endDate are set and startDate is not after endDate, only expenses in that range are returned.
//	@Tags			Variable Expenses
//	@Produce		json
//	@Success		200			{object}	ListResponse[VariableExpense]
//	@Failure		400			{object}	ListResponse[VariableExpense]
//	@Param			startDate	query		string	false	"First date of the range"
//	@Param			endDate		query		string	false	"Last date of the range"
//	@Router			/v1/variable-expenses [get]
func (co Controller) GetVariableExpenses(c *gin.Context) {
	r, err := co.dateRange(c)
	if err != nil {
		c.JSON(status(err), ListResponse[VariableExpense]{Error: errorString(err)})
		return
	}

	expenses, err := co.Store.VariableExpenses(c.Request.Context(), auth.Owner(c), r)
	if err != nil {
		c.JSON(status(err), ListResponse[VariableExpense]{Error: errorString(err)})
		return
	}

	data := make([]VariableExpense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, newVariableExpense(c, e))
	}

	c.JSON(http.StatusOK, ListResponse[VariableExpense]{Data: data})
}

// GetVariableExpense returns a specific variable expense
//
//	@Summary		Get variable expense
//	@Description	Returns a specific variable expense
//	@Tags			Variable Expenses
//	@Produce		json
//	@Success		200	{object}	Response[VariableExpense]
//	@Failure		400	{object}	Response[VariableExpense]
//	@Failure		404	{object}	Response[VariableExpense]
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/variable-expenses/{id} [get]
func (co Controller) GetVariableExpense(c *gin.Context) {
	getResource(c, co.Store, newVariableExpense)
}

// UpdateVariableExpense updates a variable expense
//
//	@Summary		Update variable expense
//	@Description	Updates an existing variable expense. Only values to be updated need to be specified.
//	@Tags			Variable Expenses
//	@Accept			json
//	@Produce		json
//	@Success		200				{object}	Response[VariableExpense]
//	@Success		204
//	@Failure		400				{object}	Response[VariableExpense]
//	@Failure		503				{object}	Response[VariableExpense]
//	@Param			id				path		string					true	"ID formatted as string"
//	@Param			variableExpense	body		VariableExpenseEditable	true	"Variable expense"
//	@Router			/v1/variable-expenses/{id} [patch]
func (co Controller) UpdateVariableExpense(c *gin.Context) {
	updateResource[models.VariableExpense, VariableExpenseEditable](c, storeUpdater[models.VariableExpense](co.Store), newVariableExpense)
}

// DeleteVariableExpense deletes a variable expense
//
//	@Summary		Delete variable expense
//	@Description	Deletes a variable expense
//	@Tags			Variable Expenses
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		503	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/variable-expenses/{id} [delete]
func (co Controller) DeleteVariableExpense(c *gin.Context) {
	deleteResource(c, storeDeleter[models.VariableExpense](co.Store))
}
