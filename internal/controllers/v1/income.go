package v1

import (
	"net/http"
	"time"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	Name        string      `json:"name" example:"Salário" binding:"required,notblank,max=200"` // Name of the income
	Amount      types.Cents `json:"amount" example:"850000" binding:"gte=0"`                    // Amount in cents
	Date        time.Time   `json:"date" example:"2024-03-05T12:00:00Z" binding:"required"`     // Date the income was received
	IsRecurring bool        `json:"isRecurring" example:"true" default:"false"`                 // Is this income received every month?
	Notes       string      `json:"notes" example:"" binding:"max=1000"`                        // Notes about the income
}

func (editable IncomeEditable) model(owner uuid.UUID) models.Income {
	return models.Income{
		OwnedModel:  models.OwnedModel{OwnerID: owner},
		Name:        editable.Name,
		Amount:      editable.Amount,
		Date:        editable.Date,
		IsRecurring: editable.IsRecurring,
		Notes:       editable.Notes,
	}
}

type Income struct {
	models.Income
	Links Links `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	return Income{
		Income: model,
		Links: Links{
			Self: link(c, "/v1/incomes/%s", model.ID),
		},
	}
}

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func (co Controller) RegisterIncomeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsIncomeList)
		r.GET("", co.GetIncomes)
		r.POST("", co.CreateIncomes)
	}

	{
		r.OPTIONS("/:id", co.OptionsIncomeDetail)
		r.GET("/:id", co.GetIncome)
		r.PATCH("/:id", co.UpdateIncome)
		r.DELETE("/:id", co.DeleteIncome)
	}
}

// OptionsIncomeList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Incomes
//	@Success		204
//	@Router			/v1/incomes [options]
func (co Controller) OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsIncomeDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Incomes
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/incomes/{id} [options]
func (co Controller) OptionsIncomeDetail(c *gin.Context) {
	resourceOptionsDetail[models.Income](c, co.Store, httputil.OptionsGetPatchDelete)
}

// CreateIncomes creates incomes
//
//	@Summary		Create incomes
//	@Description	Creates new incomes
//	@Tags			Incomes
//	@Produce		json
//	@Success		201		{object}	CreateResponse[Income]
//	@Failure		400		{object}	CreateResponse[Income]
//	@Failure		503		{object}	CreateResponse[Income]
//	@Param			incomes	body		[]IncomeEditable	true	"Incomes"
//	@Router			/v1/incomes [post]
func (co Controller) CreateIncomes(c *gin.Context) {
	createResources[models.Income, IncomeEditable](c, storeInserter[models.Income](co.Store), newIncome)
}

// GetIncomes returns incomes
//
//	@Summary		Get incomes
//	@Description	Returns the incomes, newest first. When both startDate and endDate are set and startDate is not after endDate, only incomes in that range are returned.
//	@Tags			Incomes
//	@Produce		json
//	@Success		200			{object}	ListResponse[Income]
//	@Failure		400			{object}	ListResponse[Income]
//	@Param			startDate	query		string	false	"First date of the range"
//	@Param			endDate		query		string	false	"Last date of the range"
//	@Router			/v1/incomes [get]
func (co Controller) GetIncomes(c *gin.Context) {
	r, err := co.dateRange(c)
	if err != nil {
		c.JSON(status(err), ListResponse[Income]{Error: errorString(err)})
		return
	}

	incomes, err := co.Store.Incomes(c.Request.Context(), auth.Owner(c), r)
	if err != nil {
		c.JSON(status(err), ListResponse[Income]{Error: errorString(err)})
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, i := range incomes {
		data = append(data, newIncome(c, i))
	}

	c.JSON(http.StatusOK, ListResponse[Income]{Data: data})
}

// GetIncome returns a specific income
//
//	@Summary		Get income
//	@Description	Returns a specific income
//	@Tags			Incomes
//	@Produce		json
//	@Success		200	{object}	Response[Income]
//	@Failure		400	{object}	Response[Income]
//	@Failure		404	{object}	Response[Income]
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/incomes/{id} [get]
func (co Controller) GetIncome(c *gin.Context) {
	getResource(c, co.Store, newIncome)
}

// UpdateIncome updates an income
//
//	@Summary		Update income
//	@Description	Updates an existing income. Only values to be updated need to be specified.
//	@Tags			Incomes
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	Response[Income]
//	@Success		204
//	@Failure		400		{object}	Response[Income]
//	@Failure		503		{object}	Response[Income]
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			income	body		IncomeEditable	true	"Income"
//	@Router			/v1/incomes/{id} [patch]
func (co Controller) UpdateIncome(c *gin.Context) {
	updateResource[models.Income, IncomeEditable](c, storeUpdater[models.Income](co.Store), newIncome)
}

// DeleteIncome deletes an income
//
//	@Summary		Delete income
//	@Description	Deletes an income
//	@Tags			Incomes
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		503	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/incomes/{id} [delete]
func (co Controller) DeleteIncome(c *gin.Context) {
	deleteResource(c, storeDeleter[models.Income](co.Store))
}
