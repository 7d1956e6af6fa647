package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Parallel runs the given functions concurrently and waits for all of them.
// A dashboard request fans out its independent upstream queries this way and
// joins before assembling the response. Panics are recovered and converted to
// errors; the first non-nil error is returned after every function finished.
func Parallel(ctx context.Context, fns ...func(ctx context.Context) error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(fns))

	for i, fn := range fns {
		wg.Add(1)
		go func(i int, fn func(ctx context.Context) error) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					ctxlog.From(ctx).Error("panic in parallel task",
						"recover", r,
						"stack", string(stack),
					)
					errs[i] = goerr.New("panic in parallel task", goerr.V("recover", r))
				}
			}()
			errs[i] = fn(ctx)
		}(i, fn)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
