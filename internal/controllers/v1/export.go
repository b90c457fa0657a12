package v1

import (
	"fmt"
	"net/http"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/export"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.Export)
}

// OptionsExport returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Export
//	@Success		204
//	@Router			/v1/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Export returns all data as a file
//
//	@Summary		Export
//	@Description	Exports all data. XLSX files contain one sheet per resource, CSV files one section per resource.
//	@Tags			Export
//	@Produce		json
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Produce		text/csv
//	@Success		200
//	@Failure		400		{object}	httpError
//	@Failure		503		{object}	httpError
//	@Param			format	query		string	false	"File format"	Enums(json, xlsx, csv)
//	@Router			/v1/export [get]
func (co Controller) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	snapshot, err := co.Store.Snapshot(c.Request.Context(), auth.Owner(c))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename(co.today().In(co.Location))))
	c.Status(http.StatusOK)

	// The status is already sent, errors can only be logged
	err = co.Exporter.Write(c.Writer, format, snapshot)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("export")
	}
}
