package generator

import (
	"fmt"

	"banksynth/internal/errors"
	"banksynth/internal/sampling"
)

// AgeBracket is one coarse age range with its sampling weight.
type AgeBracket struct {
	Label  string
	Lo, Hi int
	Weight float64
}

// DefaultAgeBrackets are the configured bracket weights. The "70+"
// bracket caps at 90, the oldest modeled customer.
var DefaultAgeBrackets = []AgeBracket{
	{Label: "15-19", Lo: 15, Hi: 19, Weight: 0.13},
	{Label: "20-39", Lo: 20, Hi: 39, Weight: 0.45},
	{Label: "40-69", Lo: 40, Hi: 69, Weight: 0.25},
	{Label: "70+", Lo: 70, Hi: 90, Weight: 0.17},
}

// AgeDraw is one customer's bracket and numeric age.
type AgeDraw struct {
	Index   int
	Bracket string
	Age     int
}

// SampleAges runs the two-stage demographic draw: first a bracket label
// per customer with replacement, then an integer age uniform within the
// bracket's inclusive range. Both stages consume the same seeded stage
// in a fixed order, brackets first.
func SampleAges(stage *sampling.Stage, brackets []AgeBracket, n int) ([]AgeDraw, error) {
	categories := make([]sampling.WeightedCategory, len(brackets))
	byLabel := make(map[string]AgeBracket, len(brackets))
	for i, b := range brackets {
		if b.Hi < b.Lo {
			return nil, errors.NewValidationError(
				fmt.Sprintf("age bracket %q has inverted range [%d, %d]", b.Label, b.Lo, b.Hi))
		}
		categories[i] = sampling.WeightedCategory{Label: b.Label, Weight: b.Weight}
		byLabel[b.Label] = b
	}

	choice, err := sampling.NewWeightedChoice(categories)
	if err != nil {
		return nil, err
	}

	// Stage 1: bracket label per customer.
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = choice.Draw(stage)
	}

	// Stage 2: numeric age inside each customer's own bracket.
	draws := make([]AgeDraw, n)
	for i, label := range labels {
		b := byLabel[label]
		draws[i] = AgeDraw{
			Index:   i,
			Bracket: label,
			Age:     stage.IntBetween(b.Lo, b.Hi),
		}
	}
	return draws, nil
}
