// Package op provides plumbing for two-argument callables: a named
// function type usable as a type-erased holder, a generic wrapper that
// applies any compatible callable, and a handful of stock operations.
//
// Example:
//
//	double := op.Binary[int](func(a, b int) int { return a + b })
//	value := op.Apply(2, 3, double)
package op

import "cmp"

// Binary is a two-argument callable over a single type. It plays the
// role of a type-erased holder: any function value, closure, or method
// value with this shape can be stored in a Binary and passed around
// uniformly.
//
// Example:
//
//	var multiply op.Binary[int] = func(a, b int) int { return a * b }
//	product := multiply(2, 3)
type Binary[T any] func(a, b T) T

// Number covers the built-in numeric types accepted by Add and Mul.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Apply invokes fn with a and b and returns the result. The constraint
// admits any callable with the right shape, including named types such
// as Binary, so callers never need to convert first. fn is invoked
// exactly once.
//
// Example:
//
//	sum := op.Apply(2, 3, func(a, b int) int { return a + b })
func Apply[T any, F ~func(T, T) T](a, b T, fn F) T {
	return fn(a, b)
}

// Add returns the sum of a and b.
func Add[T Number](a, b T) T {
	return a + b
}

// Mul returns the product of a and b.
func Mul[T Number](a, b T) T {
	return a * b
}

// Max returns the larger of a and b. When equal, b is returned.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b. When equal, b is returned.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	addFive := op.Curry(op.Add[int])(5)
//	result := addFive(3)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Flip returns fn with its arguments swapped.
func Flip[A any, B any, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return fn(a, b)
	}
}
