package pipe

import (
	"context"
	"sync"

	"github.com/eapache/queue"

	"github.com/cyeganeh01248/safe-result/pkg/result"
)

// FanIn multiplexes several Result streams into one. The output closes
// when every input has closed or the context dies.
func FanIn[T any](ctx context.Context, channels ...<-chan result.Result[T]) <-chan result.Result[T] {
	out := make(chan result.Result[T])
	wg := &sync.WaitGroup{}

	multiplex := func(c <-chan result.Result[T]) {
		defer wg.Done()

		for r := range c {
			select {
			case <-ctx.Done():
				return
			case out <- r:
			}
		}
	}

	wg.Add(len(channels))
	for _, c := range channels {
		go multiplex(c)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Buffer decouples producer and consumer with an unbounded FIFO: reads
// from in never wait on the downstream. Pending items still unread when
// the context dies are dropped.
func Buffer[T any](ctx context.Context, in <-chan result.Result[T]) <-chan result.Result[T] {
	out := make(chan result.Result[T])

	go func() {
		defer close(out)

		pending := queue.New()
		for {
			if in == nil && pending.Length() == 0 {
				return
			}

			var send chan<- result.Result[T]
			var next result.Result[T]
			if pending.Length() > 0 {
				next = pending.Peek().(result.Result[T])
				send = out
			}

			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					in = nil
					continue
				}
				pending.Add(r)
			case send <- next:
				pending.Remove()
			}
		}
	}()

	return out
}

// Fold collapses a Result stream into plain values: Ok values go through
// onOk, failures (the zero Result included) through onErr. The output
// closes with the input or when the context dies.
func Fold[In, Out any](ctx context.Context, in <-chan result.Result[In],
	onOk func(ctx context.Context, v In) Out,
	onErr func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				var folded Out
				if r.IsOk() {
					folded = onOk(ctx, r.Value())
				} else {
					_, err := r.AsTuple()
					folded = onErr(ctx, err)
				}

				select {
				case <-ctx.Done():
					return
				case out <- folded:
				}
			}
		}
	}()

	return out
}
