package v1

import (
	"net/http"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Cleanup deletes all data of the owner
//
//	@Summary		Delete everything
//	@Description	Permanently deletes all resources of the current user
//	@Tags			v1
//	@Success		204
//	@Failure		400		{object}	httpError
//	@Failure		503		{object}	httpError
//	@Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
//	@Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	if c.Query("confirm") != "yes-please-delete-everything" {
		httputil.NewError(c, http.StatusBadRequest, errCleanupConfirmation)
		return
	}

	err := co.Store.DeleteOwnerData(c.Request.Context(), auth.Owner(c))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
