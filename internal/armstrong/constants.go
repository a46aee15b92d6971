package armstrong

const (
	// MaxSafeDigits is the largest digit count for which the digit-power sum
	// always fits in a uint64: 18 * 9^18 < 2^64, whereas 19 * 9^19 does not.
	MaxSafeDigits = 18

	// MaxSafeCandidate is the largest candidate with at most MaxSafeDigits
	// digits. Callers must reject larger values before calling the checkers.
	MaxSafeCandidate uint64 = 999_999_999_999_999_999

	// MaxRecursionDepth bounds the call depth of PowerRecursive and of
	// ArmstrongSumRecursive for any candidate up to MaxSafeCandidate: the
	// exponent and the number of peeled digits are both at most
	// MaxSafeDigits.
	MaxRecursionDepth = MaxSafeDigits
)
