//go:build !gmp

package armstrong

import (
	"math/big"
	"strconv"
)

// OracleBackend names the arithmetic library behind ExactSum.
const OracleBackend = "math/big"

// ExactSum returns the digit-power sum of n computed with arbitrary
// precision, so it never overflows regardless of n.
func ExactSum(n uint64) *big.Int {
	digits := strconv.FormatUint(n, 10)
	exp := big.NewInt(int64(len(digits)))
	sum := new(big.Int)
	term := new(big.Int)
	base := new(big.Int)
	for _, c := range digits {
		base.SetInt64(int64(c - '0'))
		sum.Add(sum, term.Exp(base, exp, nil))
	}
	return sum
}
