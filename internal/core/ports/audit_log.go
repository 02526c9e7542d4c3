package ports

import (
	"context"

	"github.com/vitacare/clinic-api/internal/core/domain"
)

// AuditLog records security-relevant events. Recording is best-effort: a
// failure is the caller's to log, never to propagate to the user operation.
type AuditLog interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
