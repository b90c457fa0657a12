package v1

import (
	"net/http"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string `json:"name" example:"Moradia" binding:"required,notblank,max=100"` // Name of the category
	Icon string `json:"icon" example:"🏠" binding:"max=10"`                          // Glyph displayed for the category
}

func (editable CategoryEditable) model(owner uuid.UUID) models.Category {
	return models.Category{
		OwnedModel: models.OwnedModel{OwnerID: owner},
		Name:       editable.Name,
		Icon:       editable.Icon,
	}
}

type Category struct {
	models.Category
	Links Links `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	return Category{
		Category: model,
		Links: Links{
			Self: link(c, "/v1/categories/%s", model.ID),
		},
	}
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// OptionsCategoryList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Router			/v1/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCategoryDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Categories
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail[models.Category](c, co.Store, httputil.OptionsGetPatchDelete)
}

// CreateCategories creates categories
//
//	@Summary		Create categories
//	@Description	Creates new categories
//	@Tags			Categories
//	@Produce		json
//	@Success		201			{object}	CreateResponse[Category]
//	@Failure		400			{object}	CreateResponse[Category]
//	@Failure		503			{object}	CreateResponse[Category]
//	@Param			categories	body		[]CategoryEditable	true	"Categories"
//	@Router			/v1/categories [post]
func (co Controller) CreateCategories(c *gin.Context) {
	createResources[models.Category, CategoryEditable](c, storeInserter[models.Category](co.Store), newCategory)
}

// GetCategories returns all categories
//
//	@Summary		Get categories
//	@Description	Returns all categories
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	ListResponse[Category]
//	@Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.Store.Categories(c.Request.Context(), auth.Owner(c))
	if err != nil {
		c.JSON(status(err), ListResponse[Category]{Error: errorString(err)})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, ListResponse[Category]{Data: data})
}

// GetCategory returns a specific category
//
//	@Summary		Get category
//	@Description	Returns a specific category
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	Response[Category]
//	@Failure		400	{object}	Response[Category]
//	@Failure		404	{object}	Response[Category]
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	getResource(c, co.Store, newCategory)
}

// UpdateCategory updates a category
//
//	@Summary		Update category
//	@Description	Updates an existing category. Only values to be updated need to be specified.
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[Category]
//	@Success		204
//	@Failure		400			{object}	Response[Category]
//	@Failure		503			{object}	Response[Category]
//	@Param			id			path		string				true	"ID formatted as string"
//	@Param			category	body		CategoryEditable	true	"Category"
//	@Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	updateResource[models.Category, CategoryEditable](c, storeUpdater[models.Category](co.Store), newCategory)
}

// DeleteCategory deletes a category
//
//	@Summary		Delete category
//	@Description	Deletes a category
//	@Tags			Categories
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		503	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	deleteResource(c, storeDeleter[models.Category](co.Store))
}
