package pool

import (
	"context"
	"errors"
	"sync"

	"github.com/goriiin/async-runner/v1/domain"
)

var (
	ErrPoolStopped        = errors.New("worker pool is stopped or stopping")
	ErrPoolAlreadyRunning = errors.New("worker pool is already running")
	ErrInvalidSize        = errors.New("invalid size")
	ErrNotRunning         = errors.New("worker pool is not running")
)

// WorkerPool runs submitted jobs on a fixed set of workers. Unlike Launch,
// which spawns a goroutine per job, the pool bounds concurrency and queues
// overflow in a resizable buffer. Worker count and buffer size can change
// while the pool is running.
type WorkerPool struct {
	jobsBufferSize int
	tasks          chan *domain.Task
	workers        map[uint64]*domain.Worker

	wg sync.WaitGroup
	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	state  State

	nextID uint64
}

func NewPool(buffSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	p := &WorkerPool{
		jobsBufferSize: buffSize,
		ctx:            ctx,
		cancel:         cancel,
		state:          Created,
		workers:        make(map[uint64]*domain.Worker),
	}

	return p
}
