package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

const actorKey = contextKey("actorID")

// systemActor is recorded on audit fields when no caller identity is present.
const systemActor = "system"

// WithActor returns a context carrying the acting principal's ID.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey, actorID)
}

// GetActorFromCtx retrieves the acting principal recorded on audit fields,
// defaulting to the system actor.
func GetActorFromCtx(ctx context.Context) string {
	if actorID, ok := ctx.Value(actorKey).(string); ok && actorID != "" {
		return actorID
	}
	return systemActor
}

// ActorMiddleware copies the caller-supplied actor header into the request
// context. Identity verification happens upstream of this service.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actorID := c.GetHeader("X-Actor-ID"); actorID != "" {
			c.Request = c.Request.WithContext(WithActor(c.Request.Context(), actorID))
		}
		c.Next()
	}
}
