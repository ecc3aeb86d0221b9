package jobs

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Square is the demo workload: after a simulated delay it returns N*N.
// Progress lines go to Out, or stdout when Out is nil. The job touches no
// shared state and ignores its context, so it needs no synchronization.
type Square struct {
	N     int
	Delay time.Duration
	Out   io.Writer
}

func (s Square) Execute(_ context.Context) (any, error) {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintf(out, "Worker thread: Starting calculation for %d...\n", s.N)

	time.Sleep(s.Delay)

	result := s.N * s.N
	fmt.Fprintf(out, "Worker thread: Calculation for %d finished. Result: %d\n", s.N, result)

	return result, nil
}
