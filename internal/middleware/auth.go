// backend/internal/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gigit-app/gigit/backend/internal/auth"
	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/gigit-app/gigit/backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const identityKey = "identity"

// Identity resolves the caller from the Authorization header or the
// access_token cookie and stores it in the request context. A missing or
// invalid credential means anonymous, never a rejected request; endpoints
// that need authentication stack RequireIdentity on top.
func Identity(verifier *auth.Verifier, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				token = cookie
			}
		}

		if token != "" {
			identity, err := verifier.Identity(token)
			if err != nil {
				logger.WithError(err).Debug("Ignoring invalid session token")
			} else {
				c.Set(identityKey, identity)
			}
		}

		c.Next()
	}
}

// RequireIdentity rejects anonymous callers.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerIdentity(c) == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CallerIdentity returns the resolved identity, nil when anonymous.
func CallerIdentity(c *gin.Context) *models.Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := v.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}
