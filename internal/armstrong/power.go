package armstrong

// PowerIterative returns base^exp by seeding an accumulator with 1 and
// multiplying it by base exactly exp times. The result is exact whenever
// base^exp fits in a uint64; otherwise it wraps modulo 2^64.
func PowerIterative(base, exp uint64) uint64 {
	result := uint64(1)
	for i := uint64(0); i < exp; i++ {
		result *= base
	}
	return result
}

// PowerRecursive returns base^exp using the definition
// base^0 = 1, base^e = base * base^(e-1). The recursion depth equals exp,
// so it never exceeds MaxRecursionDepth when exp is a digit count of a
// candidate up to MaxSafeCandidate. For every input it returns the same
// value as PowerIterative.
func PowerRecursive(base, exp uint64) uint64 {
	if exp == 0 {
		return 1
	}
	return base * PowerRecursive(base, exp-1)
}
