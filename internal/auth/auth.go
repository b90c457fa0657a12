// Package auth determines the owner of a request.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fincontrol/backend/internal/httputil"
	"github.com/fincontrol/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextOwner = "fincontrol-owner"

// Users creates users.
type Users interface {
	EnsureUser(ctx context.Context, user models.User) (models.User, error)
}

// Authenticator sets the owner of each request.
type Authenticator struct {
	secret string
	local  uuid.UUID
}

// NewLocal returns an Authenticator that treats every request as made by
// the local user, creating that user if necessary.
func NewLocal(ctx context.Context, users Users) (*Authenticator, error) {
	user, err := users.EnsureUser(ctx, models.User{
		OpenID:      models.LocalOpenID,
		Name:        "Local User",
		LoginMethod: "local",
	})
	if err != nil {
		return nil, fmt.Errorf("could not set up local user: %w", err)
	}

	return &Authenticator{local: user.ID}, nil
}

// NewJWT returns an Authenticator that requires a token signed with secret.
func NewJWT(secret string) *Authenticator {
	return &Authenticator{secret: secret}
}

// Middleware aborts requests without a valid owner with HTTP 401.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.local != uuid.Nil {
			c.Set(contextOwner, a.local)
			c.Next()
			return
		}

		token := bearer(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.HTTPError{Error: ErrMissingToken.Error()})
			return
		}

		owner, err := ParseToken(a.secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httputil.HTTPError{Error: err.Error()})
			return
		}

		c.Set(contextOwner, owner)
		c.Next()
	}
}

// bearer returns the token from the Authorization header or,
// for downloads, from the token query parameter.
func bearer(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}

	return c.Query("token")
}

// Owner returns the owner of the request.
func Owner(c *gin.Context) uuid.UUID {
	owner, _ := c.Get(contextOwner)
	id, _ := owner.(uuid.UUID)
	return id
}
