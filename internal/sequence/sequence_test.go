package sequence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
)

func TestFibonacci(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "1"},
		{10, "55"},
		{93, "12200160415121876738"},
		{100, "354224848179261915075"},
	}
	for _, tt := range tests {
		got, err := Fibonacci(context.Background(), tt.n, nil)
		if err != nil {
			t.Fatalf("Fibonacci(%d) error: %v", tt.n, err)
		}
		if got.String() != tt.want {
			t.Errorf("Fibonacci(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestFibonacciReportsCompletion(t *testing.T) {
	t.Parallel()
	var last float64
	calls := 0
	if _, err := Fibonacci(context.Background(), 5000, func(v float64) { last = v; calls++ }); err != nil {
		t.Fatal(err)
	}
	if last != 1 || calls < 2 {
		t.Errorf("last progress = %f after %d calls, want 1", last, calls)
	}
}

func TestFibonacciCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fibonacci(ctx, 10, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestFibonacciTerms(t *testing.T) {
	t.Parallel()
	want := []string{"0", "1", "1", "2", "3", "5", "8", "13", "21", "34"}
	terms := FibonacciTerms(len(want))
	for i, w := range want {
		if terms[i].String() != w {
			t.Errorf("term %d = %s, want %s", i, terms[i], w)
		}
	}
	if FibonacciTerms(0) != nil {
		t.Error("FibonacciTerms(0) should be nil")
	}
}

func TestRepeatedSquare(t *testing.T) {
	t.Parallel()
	for _, s := range []bigint.Strategy{bigint.Schoolbook, bigint.Karatsuba} {
		m := bigint.NewMultiplier(s)
		got, err := RepeatedSquare(context.Background(), bigint.NewInt(-3), 3, m, nil)
		if err != nil {
			t.Fatalf("%s: %v", s, err)
		}
		if got.String() != "6561" {
			t.Errorf("%s: (-3)^8 = %s, want 6561", s, got)
		}
	}
	same, err := RepeatedSquare(context.Background(), bigint.NewInt(7), 0, bigint.NewMultiplier(bigint.Karatsuba), nil)
	if err != nil || same.String() != "7" {
		t.Errorf("zero squarings = %s, %v", same, err)
	}
}

func TestRepeatedSquareErrors(t *testing.T) {
	t.Parallel()
	_, err := RepeatedSquare(context.Background(), bigint.NewInt(2), 2, bigint.NewMultiplier(bigint.SchonhageStrassen), nil)
	if !errors.Is(err, bigint.ErrNotImplemented) {
		t.Errorf("error = %v, want ErrNotImplemented", err)
	}
	if _, err := RepeatedSquare(context.Background(), bigint.NewInt(2), -1, bigint.NewMultiplier(bigint.Karatsuba), nil); err == nil {
		t.Error("negative count should fail")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RepeatedSquare(ctx, bigint.NewInt(2), 2, bigint.NewMultiplier(bigint.Karatsuba), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRepeatedSquareProgressMonotonic(t *testing.T) {
	t.Parallel()
	var seen []float64
	_, err := RepeatedSquare(context.Background(), bigint.NewInt(418), 6, bigint.NewMultiplier(bigint.Karatsuba), func(v float64) {
		seen = append(seen, v)
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(seen); i++ {
		if seen[i] < seen[i-1] {
			t.Fatalf("progress went backwards: %v", seen)
		}
	}
	if seen[len(seen)-1] != 1 {
		t.Errorf("final progress = %f", seen[len(seen)-1])
	}
}

func TestTimer(t *testing.T) {
	t.Parallel()
	base := time.Unix(0, 0)
	tm := &Timer{start: base, now: func() time.Time { return base.Add(1500 * time.Microsecond) }}
	if tm.Elapsed() != 1500*time.Microsecond {
		t.Errorf("Elapsed = %v", tm.Elapsed())
	}
	if tm.String() != "1ms" {
		t.Errorf("String = %q, want 1ms", tm.String())
	}
	if StartTimer().Elapsed() < 0 {
		t.Error("negative elapsed")
	}
}
