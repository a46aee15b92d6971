package armstrong

import "fmt"

// ReferenceEntry is one row of a reference table.
type ReferenceEntry struct {
	// Label is the digit-count key shown next to the value (3..10).
	Label int `json:"label" yaml:"label"`
	// Value is a known Armstrong number.
	Value uint64 `json:"value" yaml:"value"`
}

// Digits returns the digit count used when timing the entry. It is derived
// from the value, never from the label.
func (e ReferenceEntry) Digits() int { return DigitCount(e.Value) }

const (
	// ReferenceCanonical selects the table whose labels equal the digit
	// count of their value.
	ReferenceCanonical = "canonical"
	// ReferenceClassic selects the historical sample list.
	ReferenceClassic = "classic"
)

// ReferenceSet returns, for each digit count from 3 to 10, an Armstrong
// number with exactly that many digits. The first three rows are the classic
// samples; the others are replaced by numbers of the right length. Every
// entry satisfies DigitCount(Value) == Label.
func ReferenceSet() []ReferenceEntry {
	return []ReferenceEntry{
		{Label: 3, Value: 153},
		{Label: 4, Value: 9474},
		{Label: 5, Value: 54748},
		{Label: 6, Value: 548834},
		{Label: 7, Value: 1741725},
		{Label: 8, Value: 24678050},
		{Label: 9, Value: 146511208},
		{Label: 10, Value: 4679307774},
	}
}

// ClassicSampleSet returns the eight sample numbers historically used by the
// demo page, labelled 3..10 in order. All are Armstrong numbers, but from
// the fourth entry on the label no longer matches the digit count.
func ClassicSampleSet() []ReferenceEntry {
	values := []uint64{153, 9474, 54748, 92727, 93084, 548834, 1741725, 4210818}
	out := make([]ReferenceEntry, len(values))
	for i, v := range values {
		out[i] = ReferenceEntry{Label: i + 3, Value: v}
	}
	return out
}

// ReferenceSetByName returns the table registered under name.
func ReferenceSetByName(name string) ([]ReferenceEntry, error) {
	switch name {
	case "", ReferenceCanonical:
		return ReferenceSet(), nil
	case ReferenceClassic:
		return ClassicSampleSet(), nil
	}
	return nil, fmt.Errorf("unknown reference set %q (want %s or %s)", name, ReferenceCanonical, ReferenceClassic)
}

// ReferenceSetNames lists the accepted reference set names.
func ReferenceSetNames() []string {
	return []string{ReferenceCanonical, ReferenceClassic}
}
