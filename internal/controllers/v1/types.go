package v1

import (
	"fmt"

	"github.com/fincontrol/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// Response is the response for a single resource.
type Response[T any] struct {
	Data  *T      `json:"data"`                                                          // Data for the resource
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ListResponse is the response for a list of resources.
type ListResponse[T any] struct {
	Data  []T     `json:"data"`                                                          // List of resources
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// CreateResponse is the response for the creation of a list of resources.
type CreateResponse[T any] struct {
	Data  []Response[T] `json:"data"`                                                          // List of the created resources or their respective error
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CreateResponse[T]) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, Response[T]{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

// Links contains the link to the resource itself.
type Links struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The resource itself
}

// link returns the URL of path below the API root.
func link(c *gin.Context, format string, a ...any) string {
	return c.GetString(string(models.DBContextURL)) + fmt.Sprintf(format, a...)
}

func errorString(err error) *string {
	s := err.Error()
	return &s
}
