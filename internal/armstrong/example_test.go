package armstrong

import "fmt"

// ExampleIsArmstrongIterative shows the loop-based checker on a few
// candidates.
func ExampleIsArmstrongIterative() {
	for _, n := range []uint64{153, 154, 9474} {
		fmt.Printf("%d %v\n", n, IsArmstrongIterative(n))
	}
	// Output:
	// 153 true
	// 154 false
	// 9474 true
}

// ExampleArmstrongSumRecursive shows that the recursive variant returns a
// sum that the caller compares with the candidate.
func ExampleArmstrongSumRecursive() {
	n := uint64(370)
	sum := ArmstrongSumRecursive(n, DigitCount(n), 0)
	fmt.Println(sum, sum == n)
	// Output:
	// 370 true
}

// ExampleDefaultFactory lists the registered variants.
func ExampleDefaultFactory() {
	factory := NewDefaultFactory()
	fmt.Println(factory.List())
	v := factory.MustGet(RecursiveName)
	fmt.Println(v.Checker(1634, 4)())
	// Output:
	// [iterative recursive]
	// true
}

// ExampleReferenceSet prints the reference table.
func ExampleReferenceSet() {
	for _, e := range ReferenceSet() {
		fmt.Printf("%d: %d\n", e.Label, e.Value)
	}
	// Output:
	// 3: 153
	// 4: 9474
	// 5: 54748
	// 6: 548834
	// 7: 1741725
	// 8: 24678050
	// 9: 146511208
	// 10: 4679307774
}
