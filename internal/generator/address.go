package generator

import (
	"fmt"

	"banksynth/internal/reference"
	"banksynth/internal/sampling"
)

// AddressDraw is one customer's address, possibly masked to absent.
type AddressDraw struct {
	Index   int
	Address string
	Missing bool
}

// SampleAddresses draws n street addresses without replacement, then
// independently masks each one with probability missingRate. Drawing
// and masking use separate stages so the mask never perturbs the
// address sequence.
func SampleAddresses(drawStage, maskStage *sampling.Stage, streets []reference.StreetRow, missingRate float64, n int) ([]AddressDraw, error) {
	indices, err := drawStage.SampleIndices(len(streets), n)
	if err != nil {
		return nil, err
	}

	draws := make([]AddressDraw, n)
	for i, idx := range indices {
		draws[i] = AddressDraw{
			Index:   i,
			Address: formatAddress(streets[idx]),
		}
	}
	for i := range draws {
		if maskStage.Mask(missingRate) {
			draws[i].Address = ""
			draws[i].Missing = true
		}
	}
	return draws, nil
}

// formatAddress composes the display address from a street row with the
// fixed place suffix.
func formatAddress(row reference.StreetRow) string {
	return fmt.Sprintf("%s St, %s", row.StreetName, row.RegionID)
}
