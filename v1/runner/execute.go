package runner

import (
	"fmt"

	"github.com/goriiin/async-runner/v1/domain"
)

func execute(t *domain.Task) {
	defer func() {
		if r := recover(); r != nil {
			t.Future.Complete(nil, fmt.Errorf("%w: %v", domain.ErrJobPanic, r))
		}
	}()

	res, err := t.Job.Execute(t.Ctx)

	t.Future.Complete(res, err)
}
