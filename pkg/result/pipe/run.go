package pipe

import (
	"context"
	"sync"

	"github.com/cyeganeh01248/safe-result/pkg/result"
)

// Hooks observes a running stage. OnEmit fires after a produced Result is
// sent downstream; OnCancel fires with the input a worker dropped when the
// context died. Workers <= 0 falls back to the context option.
type Hooks[In, Out any] struct {
	Workers  int
	OnEmit   func(ctx context.Context, out result.Result[Out])
	OnCancel func(ctx context.Context, dropped result.Result[In])
}

// Run fans st out over workers goroutines reading in. The output carries
// one produced Result per processed input, in completion order, and closes
// once the input is drained or the context dies. Items pulled but not
// emitted after cancellation are dropped, never turned into Err values.
func Run[In, Out any](ctx context.Context, in <-chan result.Result[In], st Stage[In, Out], workers int) <-chan result.Result[Out] {
	return RunWith(ctx, in, st, Hooks[In, Out]{Workers: workers})
}

// RunWith is Run with observation hooks.
func RunWith[In, Out any](ctx context.Context, in <-chan result.Result[In], st Stage[In, Out], hooks Hooks[In, Out]) <-chan result.Result[Out] {
	workers := hooks.Workers
	if workers <= 0 {
		workers = WorkersFrom(ctx, 1)
	}

	out := make(chan result.Result[Out], workers)
	wg := &sync.WaitGroup{}

	for n := 0; n < workers; n++ {
		wg.Add(1)
		go work(ctx, in, out, st, hooks, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func work[In, Out any](ctx context.Context, in <-chan result.Result[In], out chan<- result.Result[Out],
	st Stage[In, Out], hooks Hooks[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if hooks.OnCancel != nil {
					hooks.OnCancel(ctx, r)
				}
				return
			}

			produced, err := st(ctx, r)
			if err != nil {
				if result.IsCancellationError(err) {
					if hooks.OnCancel != nil {
						hooks.OnCancel(ctx, r)
					}
					return
				}
				panic(err)
			}

			select {
			case <-ctx.Done():
				if hooks.OnCancel != nil {
					hooks.OnCancel(ctx, r)
				}
				return
			case out <- produced:
				if hooks.OnEmit != nil {
					hooks.OnEmit(ctx, produced)
				}
			}
		}
	}
}
