package pool

// Stop cancels the workers and fails every queued task with
// ErrPoolStopped. Jobs already executing run to completion, queued ones
// never start.
func (wp *WorkerPool) Stop() {
	wp.mu.Lock()

	switch wp.state {
	case Created:
		wp.atomicStoreState(Stopped)
		wp.cancel()
		wp.mu.Unlock()

		return

	case Stopping, Stopped:
		wp.mu.Unlock()

		return

	case ShuttingDown:
		// A graceful shutdown already closed the queue; just cut the
		// workers loose and let the drain below clean up.
		wp.atomicStoreState(Stopping)
		wp.cancel()
		wp.mu.Unlock()

	default:
		wp.atomicStoreState(Stopping)
		wp.cancel()
		close(wp.tasks)
		wp.mu.Unlock()
	}

	wp.wg.Wait()

	wp.drainTasks()

	wp.mu.Lock()
	wp.atomicStoreState(Stopped)
	wp.mu.Unlock()

	debugf("pool stopped")
}

func (wp *WorkerPool) drainTasks() {
	for t := range wp.tasksChan() {
		t.Future.Complete(nil, ErrPoolStopped)
	}
}
