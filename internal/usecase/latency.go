package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/dropflow/pkg/jitter"
)

// simulateLatency имитирует сетевую задержку удалённого бэкенда.
// Нулевая длительность отключает задержку (используется в тестах).
func simulateLatency(ctx context.Context, d time.Duration, jitterFactor float64) error {
	if d <= 0 {
		return nil
	}

	select {
	case <-time.After(jitter.Duration(d, jitterFactor)):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
