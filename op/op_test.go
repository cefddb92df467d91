package op_test

import (
	"testing"

	"github.com/gustavodias/lambda/op"
)

func TestApply(t *testing.T) {
	calls := 0
	sum := func(a, b int) int {
		calls++
		return a + b
	}
	if got := op.Apply(2, 3, sum); got != 5 {
		t.Fatalf("apply result mismatch: %d", got)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one invocation, got %d", calls)
	}
}

func TestApplyAcceptsNamedType(t *testing.T) {
	var multiply op.Binary[int] = func(a, b int) int { return a * b }
	if got := op.Apply(2, 3, multiply); got != 6 {
		t.Fatalf("apply with Binary mismatch: %d", got)
	}
}

func TestStockOperations(t *testing.T) {
	if op.Add(2, 3) != 5 {
		t.Fatalf("add mismatch")
	}
	if op.Mul(2, 3) != 6 {
		t.Fatalf("mul mismatch")
	}
	if op.Max(2, 3) != 3 || op.Max(3, 2) != 3 {
		t.Fatalf("max mismatch")
	}
	if op.Min(2, 3) != 2 || op.Min(3, 2) != 2 {
		t.Fatalf("min mismatch")
	}
	if op.Max(7.5, -1.0) != 7.5 {
		t.Fatalf("float max mismatch")
	}
}

func TestCurryFlip(t *testing.T) {
	curried := op.Curry(op.Add[int])
	if curried(2)(3) != 5 {
		t.Fatalf("unexpected curry result")
	}
	concat := func(a, b string) string { return a + b }
	flipped := op.Flip(concat)
	if flipped("b", "a") != "ab" {
		t.Fatalf("unexpected flip result")
	}
}
