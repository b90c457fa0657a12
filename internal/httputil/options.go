package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func options(c *gin.Context, verbs string) {
	c.Header("allow", "OPTIONS, "+verbs)
	c.Status(http.StatusNoContent)
}

func OptionsGet(c *gin.Context) {
	options(c, "GET")
}

func OptionsGetPost(c *gin.Context) {
	options(c, "GET, POST")
}

func OptionsGetDelete(c *gin.Context) {
	options(c, "GET, DELETE")
}

func OptionsGetPatchDelete(c *gin.Context) {
	options(c, "GET, PATCH, DELETE")
}

func OptionsDelete(c *gin.Context) {
	options(c, "DELETE")
}
