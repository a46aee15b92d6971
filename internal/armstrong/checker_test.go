package armstrong

import (
	"math"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDigitCount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n        uint64
		expected int
	}{
		{0, 1},
		{7, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{153, 3},
		{4679307774, 10},
		{MaxSafeCandidate, MaxSafeDigits},
		{math.MaxUint64, 20},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatUint(tt.n, 10), func(t *testing.T) {
			t.Parallel()
			if got := DigitCount(tt.n); got != tt.expected {
				t.Errorf("DigitCount(%d) = %d, want %d", tt.n, got, tt.expected)
			}
			if got := len(strconv.FormatUint(tt.n, 10)); got != tt.expected {
				t.Errorf("decimal length of %d = %d, want %d", tt.n, got, tt.expected)
			}
		})
	}
}

func TestCheckers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		n        uint64
		expected bool
	}{
		{"zero", 0, true},
		{"single digit", 9, true},
		{"ten", 10, false},
		{"153", 153, true},
		{"154", 154, false},
		{"370", 370, true},
		{"371", 371, true},
		{"372", 372, false},
		{"9474", 9474, true},
		{"9475", 9475, false},
		{"92727", 92727, true},
		{"4210818", 4210818, true},
		{"24678051", 24678051, true},
		{"4679307774", 4679307774, true},
		{"94204591914", 94204591914, true},
		{"max safe candidate", MaxSafeCandidate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsArmstrongIterative(tt.n); got != tt.expected {
				t.Errorf("IsArmstrongIterative(%d) = %v, want %v", tt.n, got, tt.expected)
			}
			if got := IsArmstrongRecursive(tt.n); got != tt.expected {
				t.Errorf("IsArmstrongRecursive(%d) = %v, want %v", tt.n, got, tt.expected)
			}
			if got := IsArmstrongExact(tt.n); got != tt.expected {
				t.Errorf("IsArmstrongExact(%d) = %v, want %v", tt.n, got, tt.expected)
			}
		})
	}
}

func TestArmstrongSumRecursive(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		n        uint64
		d        int
		acc      uint64
		expected uint64
	}{
		{"153 cubed digits", 153, 3, 0, 153},
		{"154 cubed digits", 154, 3, 0, 1 + 125 + 64},
		{"carries accumulator", 12, 2, 10, 10 + 1 + 4},
		{"zero returns accumulator", 0, 1, 42, 42},
		{"digit count is not recomputed", 153, 2, 0, 1 + 25 + 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ArmstrongSumRecursive(tt.n, tt.d, tt.acc); got != tt.expected {
				t.Errorf("ArmstrongSumRecursive(%d, %d, %d) = %d, want %d", tt.n, tt.d, tt.acc, got, tt.expected)
			}
		})
	}
}

func TestExactSum_AboveSafeRange(t *testing.T) {
	t.Parallel()
	// 19 * 9^19 overflows uint64, the oracle must not.
	n := uint64(9_999_999_999_999_999_999)
	want := "25666182635786849691"
	if got := ExactSum(n).String(); got != want {
		t.Errorf("ExactSum(%d) = %s, want %s", n, got, want)
	}
	if IsArmstrongExact(n) {
		t.Errorf("IsArmstrongExact(%d) = true, want false", n)
	}
}

func TestVerdictsAndAgree(t *testing.T) {
	t.Parallel()
	v := Verdicts(548834)
	if len(v) != 3 || !Agree(v) || !v[IterativeName] {
		t.Errorf("Verdicts(548834) = %v, want three agreeing true verdicts", v)
	}
	if Agree(map[string]bool{"a": true, "b": false}) {
		t.Error("Agree should detect diverging verdicts")
	}
	if !Agree(nil) {
		t.Error("Agree(nil) should be true")
	}
}

// TestCheckers_Agreement_PropertyBased verifies that the iterative checker,
// the recursive checker and the exact oracle agree over the whole safe range.
func TestCheckers_Agreement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("iterative, recursive and exact verdicts agree", prop.ForAll(
		func(n uint64) bool {
			return Agree(Verdicts(n))
		},
		gen.UInt64Range(0, MaxSafeCandidate),
	))

	properties.Property("recursive sum equals the exact sum", prop.ForAll(
		func(n uint64) bool {
			sum := ArmstrongSumRecursive(n, DigitCount(n), 0)
			return ExactSum(n).IsUint64() && ExactSum(n).Uint64() == sum
		},
		gen.UInt64Range(0, MaxSafeCandidate),
	))

	properties.TestingRun(t)
}

// TestCheckers_RepeatedCallsAgree runs each checker several times on the
// same input, including a single Checker closure reused across calls the
// way the benchmark harness reuses it.
func TestCheckers_RepeatedCallsAgree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	const calls = 5
	properties.Property("repeated calls return identical results", prop.ForAll(
		func(n uint64) bool {
			d := DigitCount(n)
			wantIter := IsArmstrongIterative(n)
			wantSum := ArmstrongSumRecursive(n, d, 0)
			iterCheck := IterativeVariant{}.Checker(n, d)
			recCheck := RecursiveVariant{}.Checker(n, d)
			wantClosure := iterCheck()
			for i := 0; i < calls; i++ {
				if IsArmstrongIterative(n) != wantIter || ArmstrongSumRecursive(n, d, 0) != wantSum {
					return false
				}
				if iterCheck() != wantClosure || recCheck() != wantClosure {
					return false
				}
			}
			return wantClosure == wantIter && wantIter == (wantSum == n)
		},
		gen.UInt64Range(0, MaxSafeCandidate),
	))

	properties.TestingRun(t)
}

func TestCheckers_RepeatedCallsOnReferenceValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    uint64
		want bool
	}{
		{0, true},
		{153, true},
		{154, false},
		{4679307774, true},
		{MaxSafeCandidate, false},
	}
	for _, tt := range tests {
		d := DigitCount(tt.n)
		check := RecursiveVariant{}.Checker(tt.n, d)
		for i := 0; i < 3; i++ {
			if got := IsArmstrongIterative(tt.n); got != tt.want {
				t.Errorf("call %d: IsArmstrongIterative(%d) = %v, want %v", i, tt.n, got, tt.want)
			}
			if got := check(); got != tt.want {
				t.Errorf("call %d: recursive checker for %d = %v, want %v", i, tt.n, got, tt.want)
			}
		}
	}
}

func TestMaxRecursionDepth(t *testing.T) {
	t.Parallel()
	if MaxRecursionDepth != MaxSafeDigits {
		t.Fatalf("MaxRecursionDepth = %d, want %d", MaxRecursionDepth, MaxSafeDigits)
	}
	if got := DigitCount(MaxSafeCandidate); got > MaxRecursionDepth {
		t.Errorf("DigitCount(MaxSafeCandidate) = %d exceeds MaxRecursionDepth %d", got, MaxRecursionDepth)
	}
	// 9^MaxRecursionDepth still fits, so the deepest power is exact.
	if got, want := PowerRecursive(9, MaxRecursionDepth), PowerIterative(9, MaxRecursionDepth); got != want || got != 150094635296999121 {
		t.Errorf("PowerRecursive(9, %d) = %d, want 150094635296999121", MaxRecursionDepth, got)
	}
}

func TestCheckers_Exhaustive(t *testing.T) {
	t.Parallel()
	limit := uint64(100_000)
	if testing.Short() {
		limit = 10_000
	}
	var found []uint64
	for n := uint64(1); n < limit; n++ {
		it, rec := IsArmstrongIterative(n), IsArmstrongRecursive(n)
		if it != rec {
			t.Fatalf("variants disagree on %d: iterative=%v recursive=%v", n, it, rec)
		}
		if it {
			found = append(found, n)
		}
	}
	want := []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 153, 370, 371, 407, 1634, 8208, 9474, 54748, 92727, 93084}
	var expected []uint64
	for _, w := range want {
		if w < limit {
			expected = append(expected, w)
		}
	}
	if len(found) != len(expected) {
		t.Fatalf("found %v, want %v", found, expected)
	}
	for i := range found {
		if found[i] != expected[i] {
			t.Fatalf("found %v, want %v", found, expected)
		}
	}
}
