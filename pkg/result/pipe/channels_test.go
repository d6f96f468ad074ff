package pipe

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cyeganeh01248/safe-result/pkg/result"
)

func TestEmit_AllValues(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	results := Collect(ctx, Emit(ctx, 1, 2, 3))

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if !r.IsOk() || r.Value() != i+1 {
			t.Fatalf("expected Ok(%d) at position %d, got: %v", i+1, i, r)
		}
	}
}

func TestEmit_StopsWhenCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := Emit(ctx, 1, 2, 3)

	if _, ok := <-out; ok {
		t.Fatalf("expected the stream to close without emitting on a dead context")
	}
}

func TestEmitResults_PassesVariants(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	boom := errors.New("boom")
	results := Collect(ctx, EmitResults(ctx, result.Ok(1), result.Err[int](boom)))

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].IsOk() {
		t.Fatalf("expected Ok first, got: %v", results[0])
	}
	if !errors.Is(results[1].Err(), boom) {
		t.Fatalf("expected boom second, got: %v", results[1])
	}
}

func TestFirst_TakesHead(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	r := First(ctx, Emit(ctx, 9, 8, 7))

	if !r.IsOk() || r.Value() != 9 {
		t.Fatalf("expected Ok(9), got: %v", r)
	}
}

func TestFirst_EmptyStreamGivesZero(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	empty := make(chan result.Result[int])
	close(empty)

	if r := First(ctx, empty); !r.IsZero() {
		t.Fatalf("expected the zero Result from an empty stream, got: %v", r)
	}
}

func TestFanIn_MergesAll(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	merged := FanIn(ctx,
		Emit(ctx, 1, 2),
		Emit(ctx, 3, 4),
		Emit(ctx, 5, 6),
	)

	seen := make(map[int]bool)
	for _, r := range Collect(ctx, merged) {
		if !r.IsOk() {
			t.Errorf("unexpected failure: %v", r.Err())
			continue
		}
		seen[r.Value()] = true
	}

	for v := 1; v <= 6; v++ {
		if !seen[v] {
			t.Errorf("expected merged value %d not found", v)
		}
	}
}

func TestBuffer_NeverBlocksProducer(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	in := make(chan result.Result[int])
	out := Buffer(ctx, in)

	producerDone := make(chan struct{})
	go func() {
		defer close(producerDone)
		for i := 0; i < 50; i++ {
			in <- result.Ok(i)
		}
		close(in)
	}()

	// Nothing reads out yet; the producer must still finish.
	select {
	case <-producerDone:
	case <-time.After(1 * time.Second):
		t.Fatalf("expected the producer to finish without a consumer")
	}

	results := Collect(ctx, out)
	if len(results) != 50 {
		t.Fatalf("expected all 50 buffered results, got %d", len(results))
	}
	for i, r := range results {
		if r.Value() != i {
			t.Fatalf("expected FIFO order, got %d at position %d", r.Value(), i)
		}
	}
}

func TestBuffer_ClosesWithInput(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	empty := make(chan result.Result[int])
	close(empty)

	if results := Collect(ctx, Buffer(ctx, empty)); len(results) != 0 {
		t.Fatalf("expected an empty buffer to close empty, got %d results", len(results))
	}
}

func TestFold_TwoArms(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	in := EmitResults(ctx,
		result.Ok(10),
		result.Err[int](errors.New("bad input")),
		result.Ok(20),
	)

	folded := Fold(ctx, in,
		func(ctx context.Context, v int) string { return fmt.Sprintf("ok:%d", v) },
		func(ctx context.Context, err error) string { return fmt.Sprintf("err:%s", err.Error()) },
	)

	expected := map[string]bool{
		"ok:10":         false,
		"err:bad input": false,
		"ok:20":         false,
	}

	count := 0
	for v := range folded {
		count++
		if _, exists := expected[v]; !exists {
			t.Errorf("unexpected folded value: %s", v)
			continue
		}
		expected[v] = true
	}

	if count != 3 {
		t.Errorf("expected 3 folded values, got %d", count)
	}
	for v, found := range expected {
		if !found {
			t.Errorf("expected folded value not found: %s", v)
		}
	}
}

func TestFold_ZeroResultTakesErrArm(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	var zero result.Result[int]
	folded := Fold(ctx, EmitResults(ctx, zero),
		func(ctx context.Context, v int) string { return "ok" },
		func(ctx context.Context, err error) string { return "err:" + err.Error() },
	)

	v, ok := <-folded
	if !ok {
		t.Fatalf("expected one folded value")
	}
	if v != "err:"+result.ErrZeroResult.Error() {
		t.Fatalf("expected the zero-result error arm, got: %q", v)
	}
}
