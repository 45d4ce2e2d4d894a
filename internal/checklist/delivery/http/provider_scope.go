package http

import (
	"remodel-checklist/internal/checklist/provider"
	"remodel-checklist/pkg/response"

	"github.com/gin-gonic/gin"
)

// withProvider resolves the session's shared engine handle and puts it in
// the request context. Handlers behind it read through provider.FromContext,
// which panics if a route was wired up without this middleware.
func (h *handler) withProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		p, err := h.providers.ResolveProvider(c.Request.Context(), id)
		if err != nil {
			response.Error(c, h.mapError(err))
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(provider.NewContext(c.Request.Context(), p))
		c.Next()
	}
}
