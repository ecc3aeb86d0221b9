package pool

import (
	"context"
	"time"

	"github.com/goriiin/async-runner/v1/domain"
)

const submitRetryInterval = 5 * time.Millisecond

// Submit enqueues j and returns the handle for its eventual result. When
// the buffer is full, Submit polls until a slot frees up or ctx expires.
func (wp *WorkerPool) Submit(ctx context.Context, j domain.Job) (*domain.Future, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := domain.NewTask(ctx, j)

	for {
		sent, err := wp.trySubmit(t)
		if err != nil {
			return nil, err
		}

		if sent {
			return t.Future, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case <-time.After(submitRetryInterval):
		}
	}
}

// trySubmit attempts one non-blocking send. Holding the read lock keeps the
// channel from being swapped or closed mid-send.
func (wp *WorkerPool) trySubmit(t *domain.Task) (bool, error) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	switch wp.atomicLoadState() {
	case Running:
	case Created:
		return false, ErrNotRunning
	default:
		return false, ErrPoolStopped
	}

	select {
	case wp.tasks <- t:
		return true, nil

	default:
		return false, nil
	}
}
