package middlewares

import (
	"strings"

	"backend/pkg/resp"
	"backend/policy"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and loads the user's live
// role membership for this request. Roles are never taken from the token:
// a demotion takes effect on the very next request.
func AuthMiddleware(secret string, roles policy.RoleSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := resolveActor(c, secret, roles)
		if !ok {
			c.Abort()
			return
		}
		if !actor.Authenticated() {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		utils.SetActor(c, actor)
		c.Next()
	}
}

// OptionalAuth resolves the actor when a token is present but lets
// anonymous requests through (registration is open to them).
func OptionalAuth(secret string, roles policy.RoleSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := resolveActor(c, secret, roles)
		if !ok {
			c.Abort()
			return
		}
		utils.SetActor(c, actor)
		c.Next()
	}
}

func resolveActor(c *gin.Context, secret string, roles policy.RoleSource) (policy.Actor, bool) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return policy.Actor{}, true
	}
	if !strings.HasPrefix(h, "Bearer ") {
		resp.Unauthorized(c, "missing or invalid token")
		return policy.Actor{}, false
	}

	userID, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
	if err != nil {
		resp.Unauthorized(c, "invalid token")
		return policy.Actor{}, false
	}

	names, err := roles.RolesOf(userID)
	if err != nil {
		resp.ServerError(c, err)
		return policy.Actor{}, false
	}
	return policy.Actor{ID: userID, Roles: names}, true
}
