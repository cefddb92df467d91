package demo

import (
	"fmt"
	"io"

	"github.com/gustavodias/lambda/capture"
	"github.com/gustavodias/lambda/op"
	"github.com/gustavodias/lambda/seq"
)

// Steps returns the stock demonstration sequence: a functor through the
// generic wrapper, a plain anonymous callable, an immediately invoked
// callable, capture-by-value and capture-by-reference closures, and a
// type-erased callable plus a predicate count over a fixed sequence.
func Steps() []Step {
	return []Step{
		{Name: "functor", Run: functorStep},
		{Name: "lambda", Run: lambdaStep},
		{Name: "immediate", Run: immediateStep},
		{Name: "captures", Run: capturesStep},
		{Name: "holder-and-count", Run: holderAndCountStep},
	}
}

// functorStep passes a callable into the generic wrapper. The callable
// itself prints its inputs and returns 0; the wrapper then prints that
// return value.
func functorStep(w io.Writer) {
	fmt.Fprintln(w, "calling functor with template function:")
	printInputs := func(a, b int) int {
		fmt.Fprintln(w, a, b)
		return 0
	}
	Operation(w, 2, 3, printInputs)
}

// lambdaStep defines an addition callable, calls it once standalone
// with the result discarded, then routes it through the wrapper.
func lambdaStep(w io.Writer) {
	fmt.Fprintln(w, "calling lambda defined function:")
	addition := func(a, b int) int { return a + b }
	addition(2, 3)
	fmt.Fprintln(w, "passing lambda defined function into template function to be called:")
	Operation(w, 2, 3, addition)
}

// immediateStep defines and invokes a callable in a single expression.
func immediateStep(w io.Writer) {
	larger := func(a, b int) int {
		if a > b {
			return a
		}
		return b
	}(2, 3)
	fmt.Fprintf(w, "larger of 2 and 3: %d\n", larger)
}

// capturesStep shows both capture modes: a closure holding a copy of an
// outer value, and a setter aliasing an outer variable through a
// pointer. The source material read thing before assigning it; here it
// starts at zero so the transcript stays deterministic.
func capturesStep(w io.Writer) {
	two := 2
	smallerThanTwo := capture.Bind(op.Min[int], two)
	fmt.Fprintf(w, "smaller of 2 and 3: %d\n", smallerThanTwo(3))

	var thing int
	fmt.Fprintf(w, "thing: %d\n", thing)
	setThing := capture.Ref(&thing)
	setThing(2)
	fmt.Fprintf(w, "thing: %d\n", thing)
}

// holderAndCountStep stores a multiplication callable in the
// type-erased Binary holder, then counts the fixed sequence's values
// above 10. The count line deliberately omits the separator before the
// number, matching the source material.
func holderAndCountStep(w io.Writer) {
	var multiply op.Binary[int] = func(a, b int) int { return a * b }
	fmt.Fprintf(w, "multiply(2, 3): %d\n", multiply(2, 3))

	numbers := []int{2, 5, 17, 99, 33, -6}
	greaterThanTen := func(v int) bool { return v > 10 }
	total := seq.CountFunc(seq.Values(numbers), greaterThanTen)
	fmt.Fprintf(w, "numbers in array greater than 10%d\n", total)
}
