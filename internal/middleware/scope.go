package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-task-extractor/internal/model"
	"voice-task-extractor/pkg/response"
)

// HeaderUserID identifies the caller. Requests without it share the anonymous scope.
const HeaderUserID = "X-User-ID"

const (
	scopeKey        = "scope"
	maxUserIDLength = 128
)

var errUserIDTooLong = errors.New("X-User-ID header is too long")

// Scope resolves the caller's scope from the request headers.
func (m Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if len(userID) > maxUserIDLength {
			response.Error(c, errUserIDTooLong, nil)
			return
		}
		if userID == "" {
			userID = model.AnonymousUserID
		}

		SetScope(c, model.Scope{UserID: userID})
		c.Next()
	}
}

// SetScope stores sc on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the scope stored by the Scope middleware, or the anonymous
// scope when none was set.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{UserID: model.AnonymousUserID}
}
