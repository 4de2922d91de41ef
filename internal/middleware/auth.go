package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"atomic-scheduler/internal/model"
	"atomic-scheduler/pkg/response"
)

// scopeKey is the gin context key the authenticated scope is stored under.
const scopeKey = "x-scope"

// Auth requires an X-User-ID header and stores the resulting scope in the
// request context. There is no credential check: the service trusts its
// gateway to have authenticated the caller.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{UserID: userID})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth. The zero scope means the
// route was registered without Auth, which is a wiring bug.
func GetScope(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
