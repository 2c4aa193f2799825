package middlewares

import (
	"backend/pkg/resp"
	"backend/policy"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// Authorize guards resources whose decision depends only on the actor and
// the verb. Endpoints whose decision also depends on the addressed row
// (account detail, group detail, order updates) consult the policy from
// their controllers with the target fields filled in.
func Authorize(p *policy.Policy, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := policy.Request{
			Actor:    utils.CurrentActor(c),
			Resource: resource,
			Verb:     c.Request.Method,
		}
		if p.Decide(req) != policy.Allow {
			resp.Forbidden(c, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
