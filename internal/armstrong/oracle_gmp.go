//go:build gmp

// This file swaps the exact oracle onto GMP, conditionally compiled with the
// "gmp" build tag (go build -tags=gmp). It requires libgmp on the host:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp

package armstrong

import (
	"math/big"
	"strconv"

	"github.com/ncw/gmp"
)

// OracleBackend names the arithmetic library behind ExactSum.
const OracleBackend = "gmp"

// ExactSum returns the digit-power sum of n computed with GMP. The result is
// converted back to a math/big value so callers stay backend-agnostic.
func ExactSum(n uint64) *big.Int {
	digits := strconv.FormatUint(n, 10)
	exp := gmp.NewInt(int64(len(digits)))
	sum := new(gmp.Int)
	term := new(gmp.Int)
	base := new(gmp.Int)
	for _, c := range digits {
		base.SetInt64(int64(c - '0'))
		term.Exp(base, exp, nil)
		sum.Add(sum, term)
	}
	out, _ := new(big.Int).SetString(sum.String(), 10)
	return out
}
