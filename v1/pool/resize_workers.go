package pool

import "context"

// Resize grows or shrinks the worker set to size. Shrinking cancels
// surplus workers; each finishes its current job before exiting.
func (wp *WorkerPool) Resize(size int) error {
	wp.mu.Lock()

	if wp.state != Running {
		st := wp.state
		wp.mu.Unlock()

		if st == Created {
			return ErrNotRunning
		}

		return ErrPoolStopped
	}

	if size < 0 {
		wp.mu.Unlock()

		return ErrInvalidSize
	}

	curr := len(wp.workers)
	diff := size - curr

	switch {
	case diff > 0:
		wp.mu.Unlock()

		for i := 0; i < diff; i++ {
			wp.addWorker()
		}

		debugf("pool grown from %d to %d workers", curr, size)

		return nil

	case diff < 0:
		diff = -diff
		i := 0
		workersToCancel := make([]context.CancelFunc, 0, diff)

		for _, w := range wp.workers {
			if i >= diff {
				break
			}

			workersToCancel = append(workersToCancel, w.Cancel)
			delete(wp.workers, w.ID)

			i++
		}
		wp.mu.Unlock()

		for _, cancel := range workersToCancel {
			cancel()
		}

		debugf("pool shrunk from %d to %d workers", curr, size)

		return nil

	default:
		wp.mu.Unlock()

		return nil
	}
}
