package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/hrops/hr-admin-service/internal/events"
)

// StartAuditWorker subscribes an audit-log handler to every entity lifecycle
// event so each admin mutation leaves a structured trail.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	audit := func(ctx context.Context, event events.Event) error {
		logger.Info("audit",
			zap.String("event", string(event.Type)),
			zap.String("entity_id", event.EntityID),
			zap.String("actor_id", event.ActorID),
			zap.Time("occurred_at", event.Timestamp),
			zap.Any("payload", event.Payload),
		)
		return nil
	}

	for _, t := range []events.EventType{
		events.EventDepartmentCreated,
		events.EventDepartmentUpdated,
		events.EventDepartmentDeleted,
		events.EventEmployeeCreated,
		events.EventEmployeeUpdated,
		events.EventEmployeeDeleted,
	} {
		dispatcher.Subscribe(t, audit)
	}
}
