package domain

import "sync/atomic"

// HandleState is the lifecycle position of a Future. A handle starts pending,
// becomes ready when its worker reaches a terminal state, and is consumed by
// the first Wait. Consumed is terminal.
type HandleState int32

const (
	StatePending HandleState = iota
	StateReady
	StateConsumed
)

// FutureResult is the tagged outcome slot: a value on success, an error on
// failure.
type FutureResult struct {
	Res any
	Err error
}

// Future is the single-consumer handle for a task's eventual outcome. It must
// be waited on by the goroutine that launched the task; sharing one handle
// between several waiting goroutines is outside the contract.
type Future struct {
	result chan FutureResult
	state  int32
}

func NewFuture() *Future {
	return &Future{result: make(chan FutureResult, 1)}
}

// Complete stores the task outcome and marks the handle ready. The runtime
// calls it once per task; the first call wins and later calls are no-ops.
func (f *Future) Complete(res any, err error) {
	if !atomic.CompareAndSwapInt32(&f.state, int32(StatePending), int32(StateReady)) {
		return
	}

	f.result <- FutureResult{Res: res, Err: err}
}

// Wait blocks until the task has finished and returns its result or the
// failure raised inside the worker. There is no timeout and no cancellation:
// Wait returns only once the worker has reached a terminal state. If the task
// finished before Wait was called, Wait returns immediately with the stored
// outcome. The first call consumes the handle; any later call returns
// ErrResultConsumed.
func (f *Future) Wait() (any, error) {
	r, ok := <-f.result
	if !ok {
		return nil, ErrResultConsumed
	}

	atomic.StoreInt32(&f.state, int32(StateConsumed))
	close(f.result)

	return r.Res, r.Err
}

// Completed reports, without blocking, whether the worker has finished.
func (f *Future) Completed() bool {
	return f.State() != StatePending
}

// State returns the handle's current lifecycle position.
func (f *Future) State() HandleState {
	return HandleState(atomic.LoadInt32(&f.state))
}
