package pool

import (
	"context"

	"github.com/goriiin/async-runner/v1/domain"
)

func (wp *WorkerPool) workerLoop(ctx context.Context, w *domain.Worker) {
	defer wp.wg.Done()

	defer func() {
		wp.mu.Lock()
		defer wp.mu.Unlock()

		delete(wp.workers, w.ID)
	}()

	for {
		// Checked up front so a cancelled worker does not win the race
		// for a queued task against its own Done channel.
		if ctx.Err() != nil {
			return
		}

		select {
		case <-ctx.Done():
			return

		case t, ok := <-wp.tasksChan():
			if !ok {
				// The queue was closed either by a buffer resize or by a
				// shutdown. Only a shutdown retires the worker.
				if wp.atomicLoadState() == Running {
					continue
				}

				return
			}

			wp.execute(t)
		}
	}
}
