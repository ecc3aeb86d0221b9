package pool

import (
	"context"
	"sync/atomic"

	"github.com/goriiin/async-runner/v1/domain"
)

func (wp *WorkerPool) addWorker() {
	workerID := atomic.AddUint64(&wp.nextID, 1)

	ctx, cancel := context.WithCancel(wp.ctx)
	w := &domain.Worker{ID: workerID, Cancel: cancel}

	wp.mu.Lock()

	// A shutdown may have begun since the caller decided to grow the pool.
	if wp.state != Running {
		wp.mu.Unlock()
		cancel()

		return
	}

	wp.workers[w.ID] = w
	wp.wg.Add(1)
	wp.mu.Unlock()

	debugf("worker %d started", workerID)

	go wp.workerLoop(ctx, w)
}
