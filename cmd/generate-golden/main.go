// Command generate-golden writes the golden file used by the armstrong
// package tests. Sums are computed with math/big so that the file does not
// depend on the code it checks.
//
//	go run ./cmd/generate-golden
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strconv"
)

// GoldenData is one entry of the golden file.
type GoldenData struct {
	N         uint64 `json:"n"`
	Digits    int    `json:"digits"`
	Sum       string `json:"sum"`
	Armstrong bool   `json:"armstrong"`
}

// knownArmstrong lists the Armstrong numbers from 3 to 11 digits. Each one
// and its successor go into the file.
var knownArmstrong = []uint64{
	153, 370, 371, 407,
	1634, 8208, 9474,
	54748, 92727, 93084,
	548834,
	1741725, 4210818, 9800817, 9926315,
	24678050, 24678051, 88593477,
	146511208, 472335975, 534494836, 912985153,
	4679307774,
	32164049650, 32164049651, 40028394225, 42678290603, 44708635679,
	49388550606, 82693916578, 94204591914,
}

// edgeCases are boundaries and non-members worth pinning.
var edgeCases = []uint64{
	10, 100, 1000, 99999, 123456789,
	999_999_999_999_999_999,
	math.MaxUint64,
}

// armstrongSum returns the sum of the digits of n, each raised to the
// number of digits, and that digit count.
func armstrongSum(n uint64) (*big.Int, int) {
	digits := strconv.FormatUint(n, 10)
	exp := big.NewInt(int64(len(digits)))
	sum := new(big.Int)
	for _, c := range digits {
		d := big.NewInt(int64(c - '0'))
		sum.Add(sum, d.Exp(d, exp, nil))
	}
	return sum, len(digits)
}

// goldenCandidates returns the sorted, de-duplicated candidate list.
func goldenCandidates() []uint64 {
	var candidates []uint64
	for n := uint64(0); n <= 9; n++ {
		candidates = append(candidates, n)
	}
	candidates = append(candidates, edgeCases...)
	for _, a := range knownArmstrong {
		candidates = append(candidates, a, a+1)
	}
	slices.Sort(candidates)
	return slices.Compact(candidates)
}

func buildGolden() []GoldenData {
	candidates := goldenCandidates()
	out := make([]GoldenData, 0, len(candidates))
	for _, n := range candidates {
		sum, digits := armstrongSum(n)
		out = append(out, GoldenData{
			N:         n,
			Digits:    digits,
			Sum:       sum.String(),
			Armstrong: sum.Cmp(new(big.Int).SetUint64(n)) == 0,
		})
	}
	return out
}

func main() {
	output := flag.String("o", filepath.Join("internal", "armstrong", "testdata", "armstrong_golden.json"), "golden file path")
	flag.Parse()

	golden := buildGolden()
	data, err := json.MarshalIndent(golden, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding golden data: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing golden file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Golden file written to %s (%d entries)\n", *output, len(golden))
}
