package orchestration

import (
	"fmt"

	"github.com/agbru/armcalc/internal/armstrong"
)

// ResolveVariants fetches the two variants compared by every run from the
// factory.
//
// Parameters:
//   - factory: The variant registry.
//
// Returns:
//   - armstrong.Variant: The iterative variant.
//   - armstrong.Variant: The recursive variant.
//   - error: An error if either variant is not registered.
func ResolveVariants(factory armstrong.VariantFactory) (armstrong.Variant, armstrong.Variant, error) {
	iterative, err := factory.Get(armstrong.IterativeName)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve variants: %w", err)
	}
	recursive, err := factory.Get(armstrong.RecursiveName)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve variants: %w", err)
	}
	return iterative, recursive, nil
}
