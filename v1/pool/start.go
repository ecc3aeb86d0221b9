package pool

import "github.com/goriiin/async-runner/v1/domain"

func (wp *WorkerPool) Start(poolSize int) error {
	debugf("WorkerPool.Start: %d workers requested", poolSize)

	if poolSize < 0 {
		poolSize = 0
	}

	wp.mu.Lock()

	if wp.state != Created {
		wp.mu.Unlock()

		return ErrPoolAlreadyRunning
	}

	wp.atomicStoreState(Running)
	wp.tasks = make(chan *domain.Task, wp.jobsBufferSize)

	wp.mu.Unlock()

	for i := 0; i < poolSize; i++ {
		wp.addWorker()
	}

	debugf("WorkerPool.Start done")

	return nil
}
