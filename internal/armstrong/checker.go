package armstrong

// DigitCount returns the length of the base-10 representation of n.
// DigitCount(0) is 1.
func DigitCount(n uint64) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// IsArmstrongIterative reports whether n equals the sum of its digits each
// raised to DigitCount(n). Digits are extracted from the least significant
// end and the powers come from PowerIterative.
//
// n must not exceed MaxSafeCandidate.
func IsArmstrongIterative(n uint64) bool {
	d := uint64(DigitCount(n))
	var sum uint64
	for rest := n; ; {
		sum += PowerIterative(rest%10, d)
		rest /= 10
		if rest == 0 {
			break
		}
	}
	return sum == n
}

// ArmstrongSumRecursive returns acc plus the sum of the digits of n each
// raised to d. It peels the least significant digit per call and carries
// the running total, stopping when n reaches 0. The depth is DigitCount(n),
// at most MaxRecursionDepth for n up to MaxSafeCandidate; each level also
// calls PowerRecursive with depth d.
//
// The function returns the sum, not a verdict: the caller compares it with
// the original number. ArmstrongSumRecursive(0, d, acc) == acc, which makes
// the zero candidate compare equal to itself.
func ArmstrongSumRecursive(n uint64, d int, acc uint64) uint64 {
	if n == 0 {
		return acc
	}
	return ArmstrongSumRecursive(n/10, d, acc+PowerRecursive(n%10, uint64(d)))
}

// IsArmstrongRecursive reports whether n is an Armstrong number using
// ArmstrongSumRecursive. It agrees with IsArmstrongIterative for every n up
// to MaxSafeCandidate, including 0 (0 = 0^1).
func IsArmstrongRecursive(n uint64) bool {
	return ArmstrongSumRecursive(n, DigitCount(n), 0) == n
}
