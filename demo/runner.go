// Package demo runs an ordered sequence of console demonstrations,
// pausing for a line of input between steps so a viewer can read each
// block before the next one prints.
package demo

import (
	"bufio"
	"fmt"
	"io"
)

// Step is one self-contained demonstration. Run writes the step's whole
// output, headers included, to w. Name identifies the step and is never
// printed.
type Step struct {
	Name string
	Run  func(w io.Writer)
}

// Runner executes steps in order against Out, reading one line from In
// after each step. The line's content is discarded; the read exists
// only to pace the output.
type Runner struct {
	In  io.Reader
	Out io.Writer
}

// Run executes the steps in order. When In is nil or runs out of lines
// the runner stops pausing and lets the remaining steps print back to
// back. A read failure other than end of input is returned after all
// steps have run.
func (r Runner) Run(steps ...Step) error {
	if r.In == nil {
		for _, step := range steps {
			step.Run(r.Out)
		}
		return nil
	}
	scanner := bufio.NewScanner(r.In)
	pausing := true
	for _, step := range steps {
		step.Run(r.Out)
		if pausing && !scanner.Scan() {
			pausing = false
		}
	}
	return scanner.Err()
}

// Operation invokes fn with a and b, prints the result on its own line,
// and returns it. fn is invoked exactly once. The constraint admits any
// callable shaped like func(int, int) int, named types included.
//
// Example:
//
//	sum := demo.Operation(os.Stdout, 2, 3, func(a, b int) int { return a + b })
func Operation[F ~func(int, int) int](w io.Writer, a, b int, fn F) int {
	result := fn(a, b)
	fmt.Fprintln(w, result)
	return result
}
