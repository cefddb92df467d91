// Package seq provides predicate-driven counting and filtering over
// slices and iter.Seq streams.
package seq

import (
	"iter"
	"slices"
)

// Values returns a stream over the slice without copying it.
func Values[T any](in []T) iter.Seq[T] {
	return slices.Values(in)
}

// Filter yields only the values satisfying predicate. Evaluation is
// lazy; the source is consumed as the result is.
//
// Example:
//
//	big := seq.Filter(seq.Values(numbers), func(v int) bool { return v > 10 })
func Filter[T any](src iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range src {
			if !predicate(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// CountFunc reports how many values of the stream satisfy predicate.
// The stream is fully consumed.
//
// Example:
//
//	total := seq.CountFunc(seq.Values(numbers), func(v int) bool { return v > 10 })
func CountFunc[T any](src iter.Seq[T], predicate func(T) bool) int {
	total := 0
	for v := range src {
		if predicate(v) {
			total++
		}
	}
	return total
}

// Count reports how many values of the stream equal target.
func Count[T comparable](src iter.Seq[T], target T) int {
	return CountFunc(src, func(v T) bool { return v == target })
}

// Collect drains the stream into a slice. An empty stream yields an
// empty, non-nil slice.
func Collect[T any](src iter.Seq[T]) []T {
	out := slices.Collect(src)
	if out == nil {
		return []T{}
	}
	return out
}

// CountSlice is the eager form of CountFunc for callers holding a
// slice.
func CountSlice[T any](in []T, predicate func(T) bool) int {
	total := 0
	for _, v := range in {
		if predicate(v) {
			total++
		}
	}
	return total
}
