package v1

import (
	"net/http"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentTypeEditable represents all user configurable parameters
type PaymentTypeEditable struct {
	Name string `json:"name" example:"Cartão de crédito" binding:"required,notblank,max=50"` // Name of the payment type
}

func (editable PaymentTypeEditable) model(owner uuid.UUID) models.PaymentType {
	return models.PaymentType{
		OwnedModel: models.OwnedModel{OwnerID: owner},
		Name:       editable.Name,
	}
}

type PaymentType struct {
	models.PaymentType
	Links Links `json:"links"`
}

func newPaymentType(c *gin.Context, model models.PaymentType) PaymentType {
	return PaymentType{
		PaymentType: model,
		Links: Links{
			Self: link(c, "/v1/payment-types/%s", model.ID),
		},
	}
}

// RegisterPaymentTypeRoutes registers the routes for payment types with
// the RouterGroup that is passed.
func (co Controller) RegisterPaymentTypeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsPaymentTypeList)
		r.GET("", co.GetPaymentTypes)
		r.POST("", co.CreatePaymentTypes)
	}

	{
		r.OPTIONS("/:id", co.OptionsPaymentTypeDetail)
		r.GET("/:id", co.GetPaymentType)
		r.PATCH("/:id", co.UpdatePaymentType)
		r.DELETE("/:id", co.DeletePaymentType)
	}
}

// OptionsPaymentTypeList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Payment Types
//	@Success		204
//	@Router			/v1/payment-types [options]
func (co Controller) OptionsPaymentTypeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsPaymentTypeDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Payment Types
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/payment-types/{id} [options]
func (co Controller) OptionsPaymentTypeDetail(c *gin.Context) {
	resourceOptionsDetail[models.PaymentType](c, co.Store, httputil.OptionsGetPatchDelete)
}

// CreatePaymentTypes creates payment types
//
//	@Summary		Create payment types
//	@Description	Creates new payment types
//	@Tags			Payment Types
//	@Produce		json
//	@Success		201				{object}	CreateResponse[PaymentType]
//	@Failure		400				{object}	CreateResponse[PaymentType]
//	@Failure		503				{object}	CreateResponse[PaymentType]
//	@Param			paymentTypes	body		[]PaymentTypeEditable	true	"Payment types"
//	@Router			/v1/payment-types [post]
func (co Controller) CreatePaymentTypes(c *gin.Context) {
	createResources[models.PaymentType, PaymentTypeEditable](c, storeInserter[models.PaymentType](co.Store), newPaymentType)
}

// GetPaymentTypes returns all payment types
//
//	@Summary		Get payment types
//	@Description	Returns all payment types
//	@Tags			Payment Types
//	@Produce		json
//	@Success		200	{object}	ListResponse[PaymentType]
//	@Router			/v1/payment-types [get]
func (co Controller) GetPaymentTypes(c *gin.Context) {
	paymentTypes, err := co.Store.PaymentTypes(c.Request.Context(), auth.Owner(c))
	if err != nil {
		c.JSON(status(err), ListResponse[PaymentType]{Error: errorString(err)})
		return
	}

	data := make([]PaymentType, 0, len(paymentTypes))
	for _, p := range paymentTypes {
		data = append(data, newPaymentType(c, p))
	}

	c.JSON(http.StatusOK, ListResponse[PaymentType]{Data: data})
}

// GetPaymentType returns a specific payment type
//
//	@Summary		Get payment type
//	@Description	Returns a specific payment type
//	@Tags			Payment Types
//	@Produce		json
//	@Success		200	{object}	Response[PaymentType]
//	@Failure		400	{object}	Response[PaymentType]
//	@Failure		404	{object}	Response[PaymentType]
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/payment-types/{id} [get]
func (co Controller) GetPaymentType(c *gin.Context) {
	getResource(c, co.Store, newPaymentType)
}

// UpdatePaymentType updates a payment type
//
//	@Summary		Update payment type
//	@Description	Updates an existing payment type. Only values to be updated need to be specified.
//	@Tags			Payment Types
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[PaymentType]
//	@Success		204
//	@Failure		400			{object}	Response[PaymentType]
//	@Failure		503			{object}	Response[PaymentType]
//	@Param			id			path		string				true	"ID formatted as string"
//	@Param			paymentType	body		PaymentTypeEditable	true	"Payment type"
//	@Router			/v1/payment-types/{id} [patch]
func (co Controller) UpdatePaymentType(c *gin.Context) {
	updateResource[models.PaymentType, PaymentTypeEditable](c, storeUpdater[models.PaymentType](co.Store), newPaymentType)
}

// DeletePaymentType deletes a payment type
//
//	@Summary		Delete payment type
//	@Description	Deletes a payment type
//	@Tags			Payment Types
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		503	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/payment-types/{id} [delete]
func (co Controller) DeletePaymentType(c *gin.Context) {
	deleteResource(c, storeDeleter[models.PaymentType](co.Store))
}
