package pool

import (
	"fmt"

	"github.com/goriiin/async-runner/v1/domain"
)

func (wp *WorkerPool) execute(t *domain.Task) {
	defer func() {
		if r := recover(); r != nil {
			debugf("task %s panicked: %v", t.ID, r)

			t.Future.Complete(nil, fmt.Errorf("%w: %v", domain.ErrJobPanic, r))
		}
	}()

	// The task may have waited in the queue past its deadline.
	if err := t.Ctx.Err(); err != nil {
		t.Future.Complete(nil, err)

		return
	}

	res, err := t.Job.Execute(t.Ctx)

	t.Future.Complete(res, err)

	debugf("task %s completed", t.ID)
}
