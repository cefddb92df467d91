package seq_test

import (
	"fmt"

	"github.com/gustavodias/lambda/seq"
)

func ExampleCountFunc() {
	numbers := []int{2, 5, 17, 99, 33, -6}
	total := seq.CountFunc(seq.Values(numbers), func(v int) bool { return v > 10 })
	fmt.Println(total)
	// Output:
	// 3
}

func ExampleFilter() {
	numbers := []int{2, 5, 17, 99, 33, -6}
	big := seq.Filter(seq.Values(numbers), func(v int) bool { return v > 10 })
	fmt.Println(seq.Collect(big))
	// Output:
	// [17 99 33]
}
