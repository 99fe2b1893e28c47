package sync

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/kiroku/pkg/utils/logging"
)

// DefaultInterval matches the periodic sync cadence of the app.
const DefaultInterval = 5 * time.Minute

// Watch pushes the snapshot on a fixed interval until the context is
// canceled. A tick that fires while another push is still running is dropped
// by the single-flight guard rather than queued.
func (u *UseCase) Watch(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	logger := logging.From(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := u.Push(ctx); err != nil {
				if errors.Is(err, ErrInFlight) {
					continue
				}
				logger.Warn("periodic push failed", "error", err)
			}
		}
	}
}
