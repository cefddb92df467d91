// Command lambdademo walks through the callable demonstrations on the
// console, waiting for a line of input between blocks. It takes no
// flags and reads no environment.
package main

import (
	"fmt"
	"os"

	"github.com/gustavodias/lambda/demo"
)

func main() {
	runner := demo.Runner{In: os.Stdin, Out: os.Stdout}
	if err := runner.Run(demo.Steps()...); err != nil {
		fmt.Fprintln(os.Stderr, "lambdademo:", err)
	}
}
