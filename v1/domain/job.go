package domain

import (
	"context"

	"github.com/google/uuid"
)

// Job is a deferred unit of work. Implementations carry their bound argument
// in struct fields and are immutable once launched.
type Job interface {
	Execute(ctx context.Context) (any, error)
}

// Task pairs a launched Job with its context and result handle. It is owned
// by the runtime until the job reaches a terminal state.
type Task struct {
	ID     uuid.UUID
	Job    Job
	Ctx    context.Context
	Future *Future
}

// NewTask binds a job to a fresh future under a new task ID.
func NewTask(ctx context.Context, j Job) *Task {
	return &Task{
		ID:     uuid.New(),
		Job:    j,
		Ctx:    ctx,
		Future: NewFuture(),
	}
}

// JobFunc adapts a plain function to the Job interface.
type JobFunc func(ctx context.Context) (any, error)

func (f JobFunc) Execute(ctx context.Context) (any, error) {
	return f(ctx)
}
