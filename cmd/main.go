package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/goriiin/async-runner/v1/config"
	"github.com/goriiin/async-runner/v1/domain"
	"github.com/goriiin/async-runner/v1/jobs"
	"github.com/goriiin/async-runner/v1/pool"
	"github.com/goriiin/async-runner/v1/runner"
)

const path = "./v1/config/config.yml"

func main() {
	cfg := config.Default()

	if err := config.Load(path); err != nil {
		log.Printf("config not loaded, using defaults: %v", err)
	} else {
		cfg = config.Conf
	}

	pool.SetDebugLogging(cfg.Logger.Level == "debug")

	ctx := context.Background()

	fmt.Println("Main thread: Starting the program.")

	future := runner.Launch(ctx, jobs.Square{
		N:     cfg.Runner.Input,
		Delay: cfg.Runner.WorkerDelay,
	})

	fmt.Println("Main thread: Doing other work while the calculation is in progress...")
	time.Sleep(cfg.Runner.MainDelay)
	fmt.Println("Main thread: Finished doing other work.")

	fmt.Println("Main thread: Waiting for the asynchronous calculation to finish and getting the result.")

	res, err := future.Wait()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Main thread: An error occurred during asynchronous execution: %v\n", err)
	} else {
		fmt.Printf("Main thread: Asynchronous calculation result: %v\n", res)
	}

	runBatch(ctx, cfg)

	fmt.Println("Main thread: Program finished.")
}

type batchItem struct {
	n      int
	future *domain.Future
}

// runBatch pushes a handful of calculations through the worker pool,
// resizing it live when the config file changes.
func runBatch(ctx context.Context, cfg config.Config) {
	w := pool.NewPool(cfg.Pool.Buffer)

	if err := w.Start(cfg.Pool.Size); err != nil {
		log.Printf("pool start err: %v", err)

		return
	}

	config.Watch(func(c config.Config) {
		pool.SetDebugLogging(c.Logger.Level == "debug")

		if err := w.Resize(c.Pool.Size); err != nil {
			log.Printf("resize workers err: %v", err)
		}

		if err := w.ResizeBuffer(c.Pool.Buffer); err != nil {
			log.Printf("resize buffer err: %v", err)
		}
	})

	fmt.Println("Main thread: Running a batch of calculations on the worker pool.")

	items := make([]batchItem, 0, 4)

	for n := 2; n <= 5; n++ {
		fut, err := w.Submit(ctx, jobs.Square{N: n, Delay: 200 * time.Millisecond})
		if err != nil {
			log.Printf("submit err: %v", err)

			continue
		}

		items = append(items, batchItem{n: n, future: fut})
	}

	// After Shutdown every accepted task has settled; the Waits below
	// never block.
	w.Shutdown()

	for _, it := range items {
		res, err := it.future.Wait()
		if err != nil {
			log.Printf("batch calculation for %d failed: %v", it.n, err)

			continue
		}

		fmt.Printf("Main thread: Batch result for %d: %v\n", it.n, res)
	}
}
