package syncer

import (
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/aceup/plansync/internal/config"
)

// retryDelay computes the backoff delay before the next pass, seeded by
// the highest attempt count across queued operations. The schedule is
// deterministic (no jitter) so consecutive failures produce strictly
// increasing delays until the cap.
func retryDelay(cfg config.Retry, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialInterval.Std()
	b.MaxInterval = cfg.MaxInterval.Std()
	b.Multiplier = 2
	b.RandomizationFactor = 0
	// Never give up on the schedule; the queue drains or the user
	// clears it.
	b.MaxElapsedTime = 0
	b.Reset()

	delay := b.NextBackOff()
	for i := 1; i < attempts; i++ {
		delay = b.NextBackOff()
	}
	return delay
}
