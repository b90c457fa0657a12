package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/store"
	"github.com/fincontrol/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReserveTransactionEditable represents all user configurable parameters
type ReserveTransactionEditable struct {
	Amount      types.Cents `json:"amount" example:"-20000" binding:"ne=0"`                    // Amount in cents. Deposits are positive, withdrawals negative
	Date        time.Time   `json:"date" example:"2024-03-05T12:00:00Z"`                       // Date of the movement, defaults to now
	Description string      `json:"description" example:"Conserto do carro" binding:"max=500"` // Description of the movement
}

func (editable ReserveTransactionEditable) model(owner uuid.UUID) models.ReserveTransaction {
	return models.ReserveTransaction{
		OwnedModel:  models.OwnedModel{OwnerID: owner},
		Amount:      editable.Amount,
		Date:        editable.Date,
		Description: editable.Description,
	}
}

type ReserveTransaction struct {
	models.ReserveTransaction
	Links Links `json:"links"`
}

func newReserveTransaction(c *gin.Context, model models.ReserveTransaction) ReserveTransaction {
	return ReserveTransaction{
		ReserveTransaction: model,
		Links: Links{
			Self: link(c, "/v1/emergency-reserve/%s", model.ID),
		},
	}
}

// ReserveBalance is the sum of all movements of the emergency reserve.
type ReserveBalance struct {
	Balance types.Cents `json:"balance" example:"1500000"` // Balance in cents
}

// RegisterReserveRoutes registers the routes for the emergency reserve with
// the RouterGroup that is passed.
func (co Controller) RegisterReserveRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsReserveList)
		r.GET("", co.GetReserveTransactions)
		r.POST("", co.CreateReserveTransactions)
		r.OPTIONS("/balance", co.OptionsReserveBalance)
		r.GET("/balance", co.GetReserveBalance)
	}

	// Movements cannot be updated, they are reverted with a new movement
	{
		r.OPTIONS("/:id", co.OptionsReserveDetail)
		r.GET("/:id", co.GetReserveTransaction)
		r.DELETE("/:id", co.DeleteReserveTransaction)
	}
}

// OptionsReserveList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Emergency Reserve
//	@Success		204
//	@Router			/v1/emergency-reserve [options]
func (co Controller) OptionsReserveList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsReserveBalance returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Emergency Reserve
//	@Success		204
//	@Router			/v1/emergency-reserve/balance [options]
func (co Controller) OptionsReserveBalance(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsReserveDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Emergency Reserve
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/emergency-reserve/{id} [options]
func (co Controller) OptionsReserveDetail(c *gin.Context) {
	resourceOptionsDetail[models.ReserveTransaction](c, co.Store, httputil.OptionsGetDelete)
}

// CreateReserveTransactions adds movements to the emergency reserve
//
//	@Summary		Add movements
//	@Description	Adds deposits (positive amounts) or withdrawals (negative amounts) to the emergency reserve
//	@Tags			Emergency Reserve
//	@Produce		json
//	@Success		201			{object}	CreateResponse[ReserveTransaction]
//	@Failure		400			{object}	CreateResponse[ReserveTransaction]
//	@Failure		503			{object}	CreateResponse[ReserveTransaction]
//	@Param			movements	body		[]ReserveTransactionEditable	true	"Movements"
//	@Router			/v1/emergency-reserve [post]
func (co Controller) CreateReserveTransactions(c *gin.Context) {
	insert := func(ctx context.Context, m *models.ReserveTransaction) error {
		if m.Date.IsZero() {
			m.Date = co.today()
		}
		return store.Create(ctx, co.Store, m)
	}

	createResources[models.ReserveTransaction, ReserveTransactionEditable](c, insert, newReserveTransaction)
}

// GetReserveTransactions returns all movements of the emergency reserve
//
//	@Summary		Get movements
//	@Description	Returns all movements of the emergency reserve, newest first
//	@Tags			Emergency Reserve
//	@Produce		json
//	@Success		200	{object}	ListResponse[ReserveTransaction]
//	@Router			/v1/emergency-reserve [get]
func (co Controller) GetReserveTransactions(c *gin.Context) {
	transactions, err := co.Store.ReserveTransactions(c.Request.Context(), auth.Owner(c))
	if err != nil {
		c.JSON(status(err), ListResponse[ReserveTransaction]{Error: errorString(err)})
		return
	}

	data := make([]ReserveTransaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newReserveTransaction(c, t))
	}

	c.JSON(http.StatusOK, ListResponse[ReserveTransaction]{Data: data})
}

// GetReserveBalance returns the balance of the emergency reserve
//
//	@Summary		Get balance
//	@Description	Returns the sum of all movements of the emergency reserve
//	@Tags			Emergency Reserve
//	@Produce		json
//	@Success		200	{object}	Response[ReserveBalance]
//	@Router			/v1/emergency-reserve/balance [get]
func (co Controller) GetReserveBalance(c *gin.Context) {
	balance, err := co.Store.ReserveBalance(c.Request.Context(), auth.Owner(c))
	if err != nil {
		c.JSON(status(err), Response[ReserveBalance]{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, Response[ReserveBalance]{Data: &ReserveBalance{Balance: balance}})
}

// GetReserveTransaction returns a specific movement
//
//	@Summary		Get movement
//	@Description	Returns a specific movement of the emergency reserve
//	@Tags			Emergency Reserve
//	@Produce		json
//	@Success		200	{object}	Response[ReserveTransaction]
//	@Failure		400	{object}	Response[ReserveTransaction]
//	@Failure		404	{object}	Response[ReserveTransaction]
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/emergency-reserve/{id} [get]
func (co Controller) GetReserveTransaction(c *gin.Context) {
	getResource(c, co.Store, newReserveTransaction)
}

// DeleteReserveTransaction deletes a movement
//
//	@Summary		Delete movement
//	@Description	Deletes a movement of the emergency reserve
//	@Tags			Emergency Reserve
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		503	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/emergency-reserve/{id} [delete]
func (co Controller) DeleteReserveTransaction(c *gin.Context) {
	deleteResource(c, storeDeleter[models.ReserveTransaction](co.Store))
}
