package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
	"github.com/yoshuavic8/church-management-sub002/internal/service"
	"github.com/yoshuavic8/church-management-sub002/internal/service/ports"
)

// AdminOnly guards station operations behind the backend's admin check.
// When the backend is unreachable the last verified actor is trusted, so a
// station mid-service keeps working through transient outages. An explicit
// rejection from the backend always wins over the cache.
func AdminOnly(cache *service.ActorCache, ids ports.IdentityProvider, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "missing bearer token"},
			)
			return
		}

		actor, err := ids.CurrentActor(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrUnauthenticated):
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or expired token"},
			)
			return
		default:
			log.LogAttrs(c.Request.Context(), logger.WarnLevel,
				"identity check unreachable, falling back to cached actor",
				logger.String("error", err.Error()),
			)
			actor = nil
		}

		resolved, err := cache.Resolve(actor)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "unauthenticated"},
			)
			return
		}

		if !resolved.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": "admin access required"},
			)
			return
		}

		c.Set("actor", resolved)
		c.Next()
	}
}

func bearerToken(c *ginext.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
