package authorization

import (
	"github.com/gin-gonic/gin"
)

// Actor is the authenticated identity resolved by the auth middleware
// and consumed by handlers and use cases.
type Actor struct {
	UserID   uint
	Username string
	Role     UserRole
}

const actorContextKey = "auth_actor"

// SetActor stores the resolved identity on the request context.
func SetActor(c *gin.Context, actor Actor) {
	c.Set(actorContextKey, actor)
	c.Set("user_id", actor.UserID)
	c.Set("user_role", actor.Role.String())
}

// ActorFromContext returns the identity set by the auth middleware.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return Actor{}, false
	}
	actor, ok := value.(Actor)
	return actor, ok
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok || !actor.Role.IsAdmin() {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessTicket reports whether the actor may read the given ticket.
// Staff see everything; regular users only their own tickets.
func CanAccessTicket(actor Actor, authorID uint) bool {
	if actor.Role.IsStaff() {
		return true
	}
	return actor.UserID == authorID
}
