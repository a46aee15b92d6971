// Package armstrong implements the numeric core of armcalc: two power
// functions, two equivalent Armstrong-number checkers, an exact
// arbitrary-precision oracle, the variant registry and the reference tables
// used by the batch benchmark.
//
// An Armstrong (narcissistic) number is a non-negative integer equal to the
// sum of its decimal digits each raised to the number of digits, e.g.
// 153 = 1³ + 5³ + 3³.
//
// All functions are pure and safe for concurrent use.
package armstrong
