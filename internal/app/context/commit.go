package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
)

// Commit executes the staged actions in order. When one fails, the ones
// before it are rolled back in reverse order and the failure is returned.
// Rollback failures are logged only.
//
// The context is committed afterwards whatever the outcome.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.committed {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	actions := rc.staged
	rc.mu.Unlock()

	logger := logging.FromContext(ctx)

	for i, a := range actions {
		logger.DebugContext(ctx, "executing action",
			slog.Int("step", i+1),
			slog.Int("total", len(actions)),
			slog.String("action", a.Description()),
		)
		if err := a.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.String("action", a.Description()),
				slog.Int("rolling_back", i),
				slog.Any("error", err),
			)
			rollback(ctx, logger, actions[:i])
			return fmt.Errorf("%s: %w", a.Description(), err)
		}
	}
	return nil
}

func rollback(ctx context.Context, logger *slog.Logger, done []domain.Action) {
	for i := len(done) - 1; i >= 0; i-- {
		a := done[i]
		if err := a.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.String("action", a.Description()),
				slog.Any("error", err),
			)
		}
	}
}
