package pool

import "sync/atomic"

type State int32

const (
	Created State = iota
	Running
	ShuttingDown
	Stopping
	Stopped
)

// Every state transition happens while holding wp.mu; workers and Submit
// read the state without the write lock, so those reads use the atomic
// helpers.
func (wp *WorkerPool) atomicLoadState() State {
	return State(atomic.LoadInt32((*int32)(&wp.state)))
}

func (wp *WorkerPool) atomicStoreState(state State) {
	atomic.StoreInt32((*int32)(&wp.state), int32(state))
}
