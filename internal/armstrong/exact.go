package armstrong

import "math/big"

// IsArmstrongExact reports whether n is an Armstrong number using ExactSum.
// Unlike the uint64 checkers it is correct for every uint64, including
// values above MaxSafeCandidate.
func IsArmstrongExact(n uint64) bool {
	return ExactSum(n).Cmp(new(big.Int).SetUint64(n)) == 0
}

// Verdicts evaluates n with both checkers and the exact oracle. The map is
// keyed by variant name plus "exact".
func Verdicts(n uint64) map[string]bool {
	return map[string]bool{
		IterativeName: IsArmstrongIterative(n),
		RecursiveName: IsArmstrongRecursive(n),
		"exact":       IsArmstrongExact(n),
	}
}

// Agree reports whether every verdict in v has the same value.
func Agree(v map[string]bool) bool {
	first, seen := false, false
	for _, ok := range v {
		if !seen {
			first, seen = ok, true
			continue
		}
		if ok != first {
			return false
		}
	}
	return true
}
