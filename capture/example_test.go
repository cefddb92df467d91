package capture_test

import (
	"fmt"

	"github.com/gustavodias/lambda/capture"
	"github.com/gustavodias/lambda/op"
)

func ExampleBind() {
	two := 2
	smaller := capture.Bind(op.Min[int], two)
	fmt.Println(smaller(3))
	// Output:
	// 2
}

func ExampleRef() {
	var thing int
	set := capture.Ref(&thing)
	set(2)
	fmt.Println(thing)
	// Output:
	// 2
}

func ExampleAccumulator() {
	add := capture.Accumulator(0)
	add(2)
	fmt.Println(add(3))
	// Output:
	// 5
}
