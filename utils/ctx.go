package utils

import (
	"backend/policy"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

func SetActor(c *gin.Context, a policy.Actor) {
	c.Set(actorKey, a)
}

// CurrentActor returns the request's actor; the zero Actor means the
// request is anonymous.
func CurrentActor(c *gin.Context) policy.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(policy.Actor); ok {
			return a
		}
	}
	return policy.Actor{}
}

func CurrentUserID(c *gin.Context) uint {
	return CurrentActor(c).ID
}
