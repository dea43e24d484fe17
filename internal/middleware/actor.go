package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

const actorCtxKey = contextKey("actor")

// SystemActor is used when no upstream identity is supplied, e.g. for
// scheduled jobs calling the engine directly.
const SystemActor = "SYSTEM"

// ActorMiddleware extracts the acting user's identity from the X-Actor-ID
// header. Authentication itself happens upstream at the gateway; this core
// only needs the identity for audit attribution.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader("X-Actor-ID")
		if actor == "" {
			actor = SystemActor
		}

		logger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("actor", actor))
		ctx := context.WithValue(c.Request.Context(), actorCtxKey, actor)
		ctx = context.WithValue(ctx, loggerCtxKey, logger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetActorFromContext retrieves the acting user's identity from the context.
func GetActorFromContext(ctx context.Context) string {
	actor, ok := ctx.Value(actorCtxKey).(string)
	if !ok || actor == "" {
		return SystemActor
	}
	return actor
}
