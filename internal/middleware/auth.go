package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenValidator reports why a bearer token is not acceptable, or nil.
type TokenValidator interface {
	Validate(token string) error
}

// AuthMiddleware lets a request through only with "Authorization: Bearer <token>"
// carrying a valid token. Every failure is a bare 401; the reason is only
// logged.
func AuthMiddleware(validator TokenValidator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			log.Debug("rejected request without bearer token", zap.String("path", c.FullPath()))
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if err := validator.Validate(token); err != nil {
			log.Debug("rejected bearer token", zap.Error(err))
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
