package services

import (
	"context"
	"log/slog"

	"menuapi-backend/events"
)

// publish sends a change event once the write has committed. Failures are only logged.
func publish(ctx context.Context, p events.Publisher, entity, action string, id uint, data interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, events.NewEvent(entity, action, id, data)); err != nil {
		slog.WarnContext(ctx, "failed to publish change event",
			"entity", entity,
			"action", action,
			"resourceId", id,
			"error", err,
		)
	}
}
