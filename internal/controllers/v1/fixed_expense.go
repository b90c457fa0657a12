package v1

import (
	"encoding/json"
	"net/http"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FixedExpenseEditable represents all user configurable parameters
type FixedExpenseEditable struct {
	Name       string      `json:"name" example:"Aluguel" binding:"required,notblank,max=200"`                   // Name of the expense
	CategoryID uuid.UUID   `json:"categoryId" example:"5e2b0a4c-8f57-4a43-9a1f-38a8e7d1b0c1" binding:"required"` // ID of the category
	Amount     types.Cents `json:"amount" example:"150000" binding:"gte=0"`                                      // Amount in cents
	DueDay     int         `json:"dueDay" example:"10" binding:"min=1,max=31"`                                   // Day of the month the expense is due
	IsActive   bool        `json:"isActive" example:"true" default:"true"`                                       // Inactive expenses are not part of the dashboard
}

// UnmarshalJSON sets the defaults for fields missing in the data.
func (editable *FixedExpenseEditable) UnmarshalJSON(data []byte) error {
	type plain FixedExpenseEditable
	p := plain{IsActive: true}

	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*editable = FixedExpenseEditable(p)
	return nil
}

func (editable FixedExpenseEditable) model(owner uuid.UUID) models.FixedExpense {
	return models.FixedExpense{
		OwnedModel: models.OwnedModel{OwnerID: owner},
		Name:       editable.Name,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		DueDay:     editable.DueDay,
		IsActive:   editable.IsActive,
	}
}

type FixedExpense struct {
	models.FixedExpense
	Links Links `json:"links"`
}

func newFixedExpense(c *gin.Context, model models.FixedExpense) FixedExpense {
	return FixedExpense{
		FixedExpense: model,
		Links: Links{
			Self: link(c, "/v1/fixed-expenses/%s", model.ID),
		},
	}
}

// RegisterFixedExpenseRoutes registers the routes for fixed expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterFixedExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsFixedExpenseList)
		r.GET("", co.GetFixedExpenses)
		r.POST("", co.CreateFixedExpenses)
	}

	{
		r.OPTIONS("/:id", co.OptionsFixedExpenseDetail)
		r.GET("/:id", co.GetFixedExpense)
		r.PATCH("/:id", co.UpdateFixedExpense)
		r.DELETE("/:id", co.DeleteFixedExpense)
	}
}

// OptionsFixedExpenseList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Fixed Expenses
//	@Success		204
//	@Router			/v1/fixed-expenses [options]
func (co Controller) OptionsFixedExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsFixedExpenseDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Fixed Expenses
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/fixed-expenses/{id} [options]
func (co Controller) OptionsFixedExpenseDetail(c *gin.Context) {
	resourceOptionsDetail[models.FixedExpense](c, co.Store, httputil.OptionsGetPatchDelete)
}

// CreateFixedExpenses creates fixed expenses
//
//	@Summary		Create fixed expenses
//	@Description	Creates new fixed expenses. Expenses are active unless specified otherwise.
//	@Tags			Fixed Expenses
//	@Produce		json
//	@Success		201				{object}	CreateResponse[FixedExpense]
//	@Failure		400				{object}	CreateResponse[FixedExpense]
//	@Failure		503				{object}	CreateResponse[FixedExpense]
//	@Param			fixedExpenses	body		[]FixedExpenseEditable	true	"Fixed expenses"
//	@Router			/v1/fixed-expenses [post]
func (co Controller) CreateFixedExpenses(c *gin.Context) {
	createResources[models.FixedExpense, FixedExpenseEditable](c, storeInserter[models.FixedExpense](co.Store), newFixedExpense)
}

// GetFixedExpenses returns all fixed expenses
//
//	@Summary		Get fixed expenses
//	@Description	Returns all fixed expenses, ordered by due day
//	@Tags			Fixed Expenses
//	@Produce		json
//	@Success		200	{object}	ListResponse[FixedExpense]
//	@Router			/v1/fixed-expenses [get]
func (co Controller) GetFixedExpenses(c *gin.Context) {
	expenses, err := co.Store.FixedExpenses(c.Request.Context(), auth.Owner(c))
	if err != nil {
		c.JSON(status(err), ListResponse[FixedExpense]{Error: errorString(err)})
		return
	}

	data := make([]FixedExpense, 0, len(expenses))
	for _, e := range expenses {
		data = append(data, newFixedExpense(c, e))
	}

	c.JSON(http.StatusOK, ListResponse[FixedExpense]{Data: data})
}

// GetFixedExpense returns a specific fixed expense
//
//	@Summary		Get fixed expense
//	@Description	Returns a specific fixed expense
//	@Tags			Fixed Expenses
//	@Produce		json
//	@Success		200	{object}	Response[FixedExpense]
//	@Failure		400	{object}	Response[FixedExpense]
//	@Failure		404	{object}	Response[FixedExpense]
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/fixed-expenses/{id} [get]
func (co Controller) GetFixedExpense(c *gin.Context) {
	getResource(c, co.Store, newFixedExpense)
}

// UpdateFixedExpense updates a fixed expense
//
//	@Summary		Update fixed expense
//	@Description	Updates an existing fixed expense. Only values to be updated need to be specified.
//	@Tags			Fixed Expenses
//	@Accept			json
//	@Produce		json
//	@Success		200				{object}	Response[FixedExpense]
//	@Success		204
//	@Failure		400				{object}	Response[FixedExpense]
//	@Failure		503				{object}	Response[FixedExpense]
//	@Param			id				path		string					true	"ID formatted as string"
//	@Param			fixedExpense	body		FixedExpenseEditable	true	"Fixed expense"
//	@Router			/v1/fixed-expenses/{id} [patch]
func (co Controller) UpdateFixedExpense(c *gin.Context) {
	updateResource[models.FixedExpense, FixedExpenseEditable](c, storeUpdater[models.FixedExpense](co.Store), newFixedExpense)
}

// DeleteFixedExpense deletes a fixed expense
//
//	@Summary		Delete fixed expense
//	@Description	Deletes a fixed expense
//	@Tags			Fixed Expenses
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		503	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/fixed-expenses/{id} [delete]
func (co Controller) DeleteFixedExpense(c *gin.Context) {
	deleteResource(c, storeDeleter[models.FixedExpense](co.Store))
}
