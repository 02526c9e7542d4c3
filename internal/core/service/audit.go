package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vitacare/clinic-api/internal/core/domain"
	"github.com/vitacare/clinic-api/internal/core/ports"
)

// recordAudit appends an event to the audit trail. Best-effort: a nil sink is
// a no-op and a write failure is logged, never returned, so the user-facing
// operation cannot fail on auditing.
func recordAudit(ctx context.Context, logger zerolog.Logger, sink ports.AuditLog, actor, action, detail string) {
	if sink == nil {
		return
	}
	event := domain.AuditEvent{
		ID:        uuid.NewString(),
		Actor:     actor,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
	if err := sink.Record(ctx, event); err != nil {
		logger.Warn().Err(err).Str("action", action).Msg("audit write failed")
	}
}
