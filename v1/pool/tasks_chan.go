package pool

import "github.com/goriiin/async-runner/v1/domain"

// tasksChan snapshots the current queue. ResizeBuffer swaps the channel
// under the write lock, so readers must never cache wp.tasks across a
// blocking receive.
func (wp *WorkerPool) tasksChan() chan *domain.Task {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	return wp.tasks
}
