package v1

import (
	"net/http"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterMeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsMe)
	r.GET("", co.GetMe)
}

// OptionsMe returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1/me [options]
func (co Controller) OptionsMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetMe returns the current user
//
//	@Summary		Current user
//	@Description	Returns the user that owns all resources of the request
//	@Tags			v1
//	@Produce		json
//	@Success		200	{object}	Response[models.User]
//	@Failure		404	{object}	Response[models.User]
//	@Failure		503	{object}	Response[models.User]
//	@Router			/v1/me [get]
func (co Controller) GetMe(c *gin.Context) {
	user, err := co.Store.User(c.Request.Context(), auth.Owner(c))
	if err != nil {
		c.JSON(status(err), Response[models.User]{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, Response[models.User]{Data: &user})
}
