package armstrong

const (
	// IterativeName is the registry key of the loop-based checker.
	IterativeName = "iterative"
	// RecursiveName is the registry key of the tail-recursive checker.
	RecursiveName = "recursive"
)

// Variant is one way of deciding whether a number is an Armstrong number.
type Variant interface {
	// Name returns the registry key (e.g. "iterative").
	Name() string
	// Description returns a human readable label for reports.
	Description() string
	// Checker returns the closure that is timed by the benchmark harness.
	// Per-candidate setup that is not part of the measured work, such as
	// the digit count, is passed in and captured by the closure.
	Checker(n uint64, digits int) func() bool
}

// IterativeVariant decides with IsArmstrongIterative. The closure recomputes
// the digit count itself, as the iterative checker always does.
type IterativeVariant struct{}

func (IterativeVariant) Name() string        { return IterativeName }
func (IterativeVariant) Description() string { return "Iterative (digit loop, PowerIterative)" }

func (IterativeVariant) Checker(n uint64, _ int) func() bool {
	return func() bool { return IsArmstrongIterative(n) }
}

// RecursiveVariant decides with ArmstrongSumRecursive, comparing the
// returned sum with n inside the timed closure.
type RecursiveVariant struct{}

func (RecursiveVariant) Name() string        { return RecursiveName }
func (RecursiveVariant) Description() string { return "Recursive (tail sum, PowerRecursive)" }

func (RecursiveVariant) Checker(n uint64, digits int) func() bool {
	return func() bool { return ArmstrongSumRecursive(n, digits, 0) == n }
}
