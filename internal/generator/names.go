// Package generator produces the synthetic Customer and Account tables.
// Each sampler draws from its own seeded stage and tags every value
// with the synthetic row index it belongs to; the assembler joins on
// that index rather than trusting slice order.
package generator

import (
	"fmt"

	"banksynth/internal/errors"
	"banksynth/internal/reference"
	"banksynth/internal/sampling"
	"banksynth/pkg/contracts/domain"
)

// NamePick is one customer name drawn from the candidate universe.
type NamePick struct {
	Index     int
	FirstName string
	Surname   string
	GenderTag string
}

// SampleNames draws n full names without replacement from the cross
// product of (gender, first name) x surname. A candidate index encodes
// a (first name, surname) pair, so the universe never has to be
// materialized. Full-name collisions across the girl and boy pools are
// possible and deliberately left in place.
func SampleNames(stage *sampling.Stage, names []reference.NameRow, surnames []reference.SurnameRow, n int) ([]NamePick, error) {
	if len(names) == 0 || len(surnames) == 0 {
		return nil, errors.NewSourceUnavailableError("name or surname reference is empty", nil)
	}

	universe := len(names) * len(surnames)
	if universe < n {
		return nil, errors.NewSampleSizeError(
			fmt.Sprintf("candidate-name universe of %d cannot cover %d customers", universe, n),
			n, universe)
	}

	indices, err := stage.SampleIndices(universe, n)
	if err != nil {
		return nil, err
	}

	picks := make([]NamePick, n)
	for i, idx := range indices {
		nameRow := names[idx/len(surnames)]
		surnameRow := surnames[idx%len(surnames)]
		picks[i] = NamePick{
			Index:     i,
			FirstName: nameRow.Name,
			Surname:   surnameRow.Surname,
			GenderTag: nameRow.Gender,
		}
	}
	return picks, nil
}

// genderFromTag relabels the reference pool tags to the customer-facing
// categories.
func genderFromTag(tag string) (domain.Gender, error) {
	switch tag {
	case reference.TagGirl:
		return domain.GenderFemale, nil
	case reference.TagBoy:
		return domain.GenderMale, nil
	default:
		return "", errors.NewValidationError(fmt.Sprintf("unknown gender tag %q", tag))
	}
}
