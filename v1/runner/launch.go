package runner

import (
	"context"

	"github.com/goriiin/async-runner/v1/domain"
)

// Launch starts j on its own goroutine and returns a handle for its
// eventual outcome. It never blocks: the caller keeps working and collects
// the result later through Future.Wait.
func Launch(ctx context.Context, j domain.Job) *domain.Future {
	t := domain.NewTask(ctx, j)

	go execute(t)

	return t.Future
}
