package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/upmkt/affiliates-api/internal/app/service/auth"
	cfgpkg "github.com/upmkt/affiliates-api/pkg/config"
	"github.com/upmkt/affiliates-api/pkg/logctx"
	"github.com/upmkt/affiliates-api/pkg/response"
	"github.com/upmkt/affiliates-api/pkg/types"
)

// AuthMiddleware validates the Bearer token and injects the authenticated
// identity (user id + role) into gin and request context.
func AuthMiddleware(cfg *cfgpkg.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorMsg(response.APIResponseCodeUnauthorized, "authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorMsg(response.APIResponseCodeUnauthorized, "invalid authorization format"))
			return
		}

		claims, err := auth.ParseToken(parts[1], cfg)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorMsg(response.APIResponseCodeUnauthorized, "invalid or expired token"))
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		ctx := context.WithValue(c.Request.Context(), logctx.UserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// AdminMiddleware gates admin routes. The token role is a fast path; the
// service lookup (redis-cached, database authoritative) catches demotions
// that happened after the token was issued.
func AdminMiddleware(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role, ok := c.Get("role")
		if userID == "" || !ok || role != types.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorMsg(response.APIResponseCodeForbidden, "admin access required"))
			return
		}

		current, err := svc.Role(c.Request.Context(), userID)
		if err != nil || current != types.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorMsg(response.APIResponseCodeForbidden, "admin access required"))
			return
		}

		c.Next()
	}
}
