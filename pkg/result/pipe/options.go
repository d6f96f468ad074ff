package pipe

import "context"

type OptionKey string

const WorkersOptionKey OptionKey = "pipe_workers"

// WithWorkers stores a default worker count on the context.
func WithWorkers(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, WorkersOptionKey, n)
}

// WorkersFrom reads the worker count option, falling back to def when the
// option is absent or not positive.
func WorkersFrom(ctx context.Context, def int) int {
	if n, ok := ctx.Value(WorkersOptionKey).(int); ok && n > 0 {
		return n
	}
	return def
}
