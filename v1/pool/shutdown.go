package pool

// Shutdown stops accepting work, lets the workers drain the queue and
// returns once they exit. Tasks no worker will ever pick up are failed
// with ErrPoolStopped so their futures never hang.
func (wp *WorkerPool) Shutdown() {
	wp.mu.Lock()

	switch wp.state {
	case Created:
		wp.atomicStoreState(Stopped)
		wp.cancel()
		wp.mu.Unlock()

		return

	case ShuttingDown, Stopping, Stopped:
		wp.mu.Unlock()

		return
	}

	wp.atomicStoreState(ShuttingDown)

	close(wp.tasks)
	wp.mu.Unlock()

	wp.wg.Wait()

	wp.drainTasks()

	wp.mu.Lock()
	wp.atomicStoreState(Stopped)
	wp.mu.Unlock()

	debugf("pool shut down")
}
