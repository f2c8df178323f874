package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"property-auth/internal/domain"
	"property-auth/internal/repository"
)

const contextUserKey = "authenticated-user"

// RequireUser gates protected routes. It extracts the bearer token from the
// Authorization header, verifies it, resolves the subject to an account and
// attaches it to the request context, or rejects with 401. The specific
// verification failure is logged but never disclosed to the caller.
func (h *Handler) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
			return
		}

		// the raw token and the Bearer form are both accepted
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		subjectID, err := h.tokens.Verify(tokenString)
		if err != nil {
			h.logger.WithError(err).Debug("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			return
		}

		user, err := h.users.GetByID(c.Request.Context(), subjectID)
		if errors.Is(err, repository.ErrNotFound) {
			// a token for a vanished account must not authorize access
			h.logger.WithError(err).Debug("token subject did not resolve")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			return
		}
		if err != nil {
			h.logger.WithError(err).Error("resolve token subject failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// UserFromContext returns the identity attached by RequireUser.
func UserFromContext(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}
