// Package sampling provides the seeded random primitives the generation
// pipeline is built on. Every pipeline stage owns one Stage with its own
// explicit seed, so re-running with the same configuration reproduces
// identical draws and reordering stages cannot disturb each other.
package sampling

import (
	"fmt"
	"math"
	"math/rand"

	"banksynth/internal/errors"
)

// Stage is a single sampling stage backed by its own seeded generator.
// A Stage is not safe for concurrent use; the pipeline is sequential.
type Stage struct {
	rng *rand.Rand
}

// NewStage creates a sampling stage from an explicit seed.
func NewStage(seed int64) *Stage {
	return &Stage{rng: rand.New(rand.NewSource(seed))}
}

// IntBetween draws one integer uniformly from the inclusive range
// [lo, hi].
func (s *Stage) IntBetween(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 draws one uniform value from [0, 1).
func (s *Stage) Float64() float64 {
	return s.rng.Float64()
}

// Gaussian draws one normally distributed value with the given mean and
// standard deviation.
func (s *Stage) Gaussian(mean, sd float64) float64 {
	return mean + s.rng.NormFloat64()*sd
}

// Mask draws one independent Bernoulli trial: true with probability p.
// Used to mark a field absent, so the expected missingness rate is p
// but exact counts vary run shape to run shape.
func (s *Stage) Mask(p float64) bool {
	return s.rng.Float64() < p
}

// SampleIndices draws k distinct indices from [0, n) without
// replacement using a partial Fisher-Yates shuffle. The over-draw check
// happens before any randomness is consumed.
func (s *Stage) SampleIndices(n, k int) ([]int, error) {
	if k > n {
		return nil, errors.NewSampleSizeError(
			fmt.Sprintf("cannot draw %d unique items from a population of %d", k, n), k, n)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k], nil
}

// WeightedCategory is one label of a categorical distribution.
type WeightedCategory struct {
	Label  string
	Weight float64
}

// WeightedChoice draws labels from a fixed categorical distribution
// with replacement.
type WeightedChoice struct {
	categories []WeightedCategory
	total      float64
}

// NewWeightedChoice validates the category weights and builds a sampler.
// Weights must be positive and sum to 1 within a small tolerance.
func NewWeightedChoice(categories []WeightedCategory) (*WeightedChoice, error) {
	if len(categories) == 0 {
		return nil, errors.NewValidationError("weighted choice needs at least one category")
	}
	total := 0.0
	for _, c := range categories {
		if c.Weight <= 0 {
			return nil, errors.NewValidationError(
				fmt.Sprintf("category %q has non-positive weight %v", c.Label, c.Weight))
		}
		total += c.Weight
	}
	if math.Abs(total-1.0) > 1e-6 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("category weights sum to %v, want 1", total))
	}
	return &WeightedChoice{categories: categories, total: total}, nil
}

// Draw samples one label from the distribution using the stage's
// generator. Exactly one uniform draw is consumed per call.
func (w *WeightedChoice) Draw(s *Stage) string {
	target := s.rng.Float64() * w.total
	cumulative := 0.0
	for _, c := range w.categories {
		cumulative += c.Weight
		if target < cumulative {
			return c.Label
		}
	}
	// Floating point edge: target landed on the total.
	return w.categories[len(w.categories)-1].Label
}

// Labels returns the category labels in declaration order.
func (w *WeightedChoice) Labels() []string {
	labels := make([]string, len(w.categories))
	for i, c := range w.categories {
		labels[i] = c.Label
	}
	return labels
}
