// Package capture builds closures with explicit capture sets. Each
// constructor makes the capture mode visible in the signature: Bind
// copies a value at construction time, Ref aliases caller-owned storage
// through a pointer, and Accumulator keeps private mutable state alive
// across calls.
package capture

import "github.com/gustavodias/lambda/op"

// Bind fixes the first argument of fn to a copy of a taken at
// construction time. Mutating the caller's variable afterwards does not
// affect the returned closure.
//
// Example:
//
//	two := 2
//	smallerThanTwo := capture.Bind(op.Min[int], two)
//	value := smallerThanTwo(3)
func Bind[A any, B any, C any](fn func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return fn(a, b)
	}
}

// Ref returns a setter that assigns its argument through dst. The
// closure holds the pointer, not the value, so every call mutates the
// caller's storage in place. dst must outlive the returned closure.
//
// Example:
//
//	var thing int
//	set := capture.Ref(&thing)
//	set(2)
func Ref[T any](dst *T) func(T) {
	return func(v T) {
		*dst = v
	}
}

// Constant returns a zero-argument closure that always yields v, copied
// at construction time.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Accumulator returns a closure holding a running total seeded with
// init. Each call adds its argument and returns the new total. Separate
// accumulators share no state.
//
// Example:
//
//	add := capture.Accumulator(0)
//	add(2)
//	total := add(3)
func Accumulator[T op.Number](init T) func(T) T {
	total := init
	return func(v T) T {
		total += v
		return total
	}
}
