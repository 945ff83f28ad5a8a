package generator

import (
	"fmt"

	"banksynth/internal/errors"
	"banksynth/internal/sampling"
)

// Identifier range: 8 digits, no leading zero.
const (
	idLow  = 10_000_000
	idHigh = 99_999_999
)

// SampleIDs draws n unique 8-digit identifiers by rejection: duplicates
// inside the 90-million-value range are rare at pipeline scale, so
// redrawing on collision stays cheap while keeping a single stage of
// randomness.
func SampleIDs(stage *sampling.Stage, n int) ([]int, error) {
	available := idHigh - idLow + 1
	if n > available {
		return nil, errors.NewSampleSizeError(
			fmt.Sprintf("cannot generate %d unique identifiers from a range of %d", n, available),
			n, available)
	}

	ids := make([]int, 0, n)
	seen := make(map[int]bool, n)
	for len(ids) < n {
		id := stage.IntBetween(idLow, idHigh)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}
