package v1

import (
	"context"
	"net/http"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// editable is the user configurable part of a model M.
type editable[M models.Owned] interface {
	model(owner uuid.UUID) M
}

// checker is implemented by editables with constraints spanning
// more than one field. fields are the fields set in the request,
// all fields are set on creation.
type checker interface {
	check(fields []string) error
}

func validate(e any, fields []string) error {
	if c, ok := e.(checker); ok {
		return c.check(fields)
	}
	return nil
}

// createResources creates one M for every editable in the request body.
func createResources[M models.Owned, E editable[M], R any](c *gin.Context, insert func(context.Context, *M) error, render func(*gin.Context, M) R) {
	var editables []E
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(status(err), CreateResponse[R]{Error: errorString(err)})
		return
	}

	owner := auth.Owner(c)

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CreateResponse[R]{Data: []Response[R]{}}

	for _, e := range editables {
		err := httputil.Validate(e)
		if err == nil {
			err = validate(e, nil)
		}
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		m := e.model(owner)
		err = insert(c.Request.Context(), &m)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := render(c, m)
		r.Data = append(r.Data, Response[R]{Data: &data})
	}

	c.JSON(status, r)
}

// getResource returns the M with the ID from the path.
func getResource[M models.Owned, R any](c *gin.Context, s *store.Store, render func(*gin.Context, M) R) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), Response[R]{Error: errorString(err)})
		return
	}

	m, err := store.Get[M](c.Request.Context(), s, auth.Owner(c), id)
	if err != nil {
		c.JSON(status(err), Response[R]{Error: errorString(err)})
		return
	}

	data := render(c, m)
	c.JSON(http.StatusOK, Response[R]{Data: &data})
}

// updater updates the named fields of the resource with id. It reports
// false when the owner has no such resource.
type updater[M models.Owned] func(ctx context.Context, owner, id uuid.UUID, fields []string, values M) (M, bool, error)

// updateResource updates the fields of the M with the ID from the path
// that are set in the request body.
//
// Updating a resource that does not exist is not an error, the
// response is empty with HTTP 204.
func updateResource[M models.Owned, E editable[M], R any](c *gin.Context, update updater[M], render func(*gin.Context, M) R) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), Response[R]{Error: errorString(err)})
		return
	}

	var data E
	fields, err := httputil.BindPatch(c, &data)
	if err == nil {
		err = validate(data, fields)
	}
	if err != nil {
		c.JSON(status(err), Response[R]{Error: errorString(err)})
		return
	}

	owner := auth.Owner(c)
	m, found, err := update(c.Request.Context(), owner, id, fields, data.model(owner))
	if err != nil {
		c.JSON(status(err), Response[R]{Error: errorString(err)})
		return
	}

	if !found {
		c.Status(http.StatusNoContent)
		return
	}

	r := render(c, m)
	c.JSON(http.StatusOK, Response[R]{Data: &r})
}

// storeUpdater updates resources directly in the store.
func storeUpdater[M models.Owned](s *store.Store) updater[M] {
	return func(ctx context.Context, owner, id uuid.UUID, fields []string, values M) (M, bool, error) {
		return store.Update(ctx, s, owner, id, fields, values)
	}
}

// deleteResource deletes the resource with the ID from the path.
func deleteResource(c *gin.Context, remove func(ctx context.Context, owner, id uuid.UUID) error) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = remove(c.Request.Context(), auth.Owner(c), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// storeDeleter deletes resources directly in the store.
func storeDeleter[M models.Owned](s *store.Store) func(ctx context.Context, owner, id uuid.UUID) error {
	return func(ctx context.Context, owner, id uuid.UUID) error {
		return store.Delete[M](ctx, s, owner, id)
	}
}

// resourceOptionsDetail answers an OPTIONS request for the M with the
// ID from the path.
func resourceOptionsDetail[M models.Owned](c *gin.Context, s *store.Store, allow gin.HandlerFunc) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = store.Get[M](c.Request.Context(), s, auth.Owner(c), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	allow(c)
}

// storeInserter creates resources directly in the store.
func storeInserter[M models.Owned](s *store.Store) func(context.Context, *M) error {
	return func(ctx context.Context, m *M) error {
		return store.Create(ctx, s, m)
	}
}
