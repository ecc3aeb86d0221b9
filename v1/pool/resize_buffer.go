package pool

import "github.com/goriiin/async-runner/v1/domain"

// ResizeBuffer replaces the queue with one of the given capacity and
// migrates queued tasks into it. Tasks that do not fit the new buffer are
// failed with ErrPoolStopped rather than left in limbo.
func (wp *WorkerPool) ResizeBuffer(size int) error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.state != Running {
		if wp.state == Created {
			return ErrNotRunning
		}

		return ErrPoolStopped
	}

	if size < 0 {
		return ErrInvalidSize
	}

	if size == wp.jobsBufferSize {
		return nil
	}

	oldTasks := wp.tasks

	newTasks := make(chan *domain.Task, size)
	wp.tasks = newTasks
	wp.jobsBufferSize = size

	// Closing wakes workers blocked on the old channel; holding the write
	// lock keeps them out of the new one until migration is done.
	close(oldTasks)

	migrated, dropped := 0, 0

	for t := range oldTasks {
		select {
		case newTasks <- t:
			migrated++

		default:
			t.Future.Complete(nil, ErrPoolStopped)

			dropped++
		}
	}

	debugf("buffer resized to %d: %d tasks migrated, %d dropped", size, migrated, dropped)

	return nil
}
