package generator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"banksynth/internal/errors"
	"banksynth/internal/reference"
	"banksynth/internal/sampling"
	"banksynth/pkg/contracts/domain"
)

// qualificationTier maps the salary reference's qualification labels to
// education tiers. The mapping is fixed and documented, not inferred
// from the data.
var qualificationTier = map[string]domain.EducationTier{
	"No tertiary qualification": domain.TierSecondary,
	"Certificate I-II":          domain.TierVocational,
	"Certificate III-IV":        domain.TierVocational,
	"Diploma":                   domain.TierVocational,
	"Bachelor degree":           domain.TierHigher,
	"Graduate diploma":          domain.TierHigher,
	"Postgraduate degree":       domain.TierHigher,
}

// DefaultTierWeights are the education-tier sampling weights.
var DefaultTierWeights = []sampling.WeightedCategory{
	{Label: string(domain.TierSecondary), Weight: 0.47},
	{Label: string(domain.TierVocational), Weight: 0.18},
	{Label: string(domain.TierHigher), Weight: 0.35},
}

// EmploymentDraw is one customer's jointly sampled education tier,
// profession and derived monthly salary.
type EmploymentDraw struct {
	Index         int
	Tier          domain.EducationTier
	Profession    string
	MonthlySalary float64
}

// PartitionByTier splits the salary reference into per-tier profession
// pools using the qualification mapping. An unmapped qualification
// label is a schema mismatch, not a row to guess at.
func PartitionByTier(salaries []reference.SalaryRow) (map[domain.EducationTier][]reference.SalaryRow, error) {
	pools := make(map[domain.EducationTier][]reference.SalaryRow)
	for _, row := range salaries {
		tier, ok := qualificationTier[row.Qualification]
		if !ok {
			return nil, errors.NewSchemaMismatchError(
				fmt.Sprintf("unknown qualification label %q for profession %q", row.Qualification, row.Profession), nil)
		}
		pools[tier] = append(pools[tier], row)
	}
	for _, tier := range domain.TierOrder {
		if len(pools[tier]) == 0 {
			return nil, errors.NewSchemaMismatchError(
				fmt.Sprintf("salary reference has no professions for tier %s", tier), nil)
		}
	}
	return pools, nil
}

// SampleEmployment draws tier, profession and salary for n customers.
// Tier and profession are sampled jointly: stage 1 draws every tier,
// stage 2 draws professions tier block by tier block in the counts the
// tier draw produced, stage 3 derives salaries. Professions always come
// out of the customer's own tier pool.
func SampleEmployment(stage *sampling.Stage, salaries []reference.SalaryRow, tierWeights []sampling.WeightedCategory, noiseSD float64, n int) ([]EmploymentDraw, error) {
	pools, err := PartitionByTier(salaries)
	if err != nil {
		return nil, err
	}

	choice, err := sampling.NewWeightedChoice(tierWeights)
	if err != nil {
		return nil, err
	}

	// Stage 1: education tier per customer.
	draws := make([]EmploymentDraw, n)
	for i := 0; i < n; i++ {
		draws[i] = EmploymentDraw{
			Index: i,
			Tier:  domain.EducationTier(choice.Draw(stage)),
		}
	}

	// Stage 2: professions with replacement, one tier block at a time.
	// The per-tier counts fall out of the tier draw above; they are
	// recomputed every run, never fixed.
	for _, tier := range domain.TierOrder {
		pool := pools[tier]
		for i := range draws {
			if draws[i].Tier != tier {
				continue
			}
			row := pool[stage.IntBetween(0, len(pool)-1)]
			draws[i].Profession = row.Profession
			draws[i].MonthlySalary = row.AvgWeeklyEarnings * 4
		}
	}

	// Stage 3: Gaussian noise on the monthly baseline, rounded to the
	// nearest hundred.
	for i := range draws {
		noisy := draws[i].MonthlySalary + stage.Gaussian(0, noiseSD)
		draws[i].MonthlySalary = roundToHundred(noisy)
	}
	return draws, nil
}

// roundToHundred rounds to the nearest hundred with exact decimal
// arithmetic, avoiding float drift at the .50 boundary.
func roundToHundred(v float64) float64 {
	d := decimal.NewFromFloat(v).Div(decimal.NewFromInt(100)).Round(0).Mul(decimal.NewFromInt(100))
	f, _ := d.Float64()
	return f
}

// TierProfessions exposes the per-tier profession sets for validation
// and tests.
func TierProfessions(salaries []reference.SalaryRow) (map[domain.EducationTier]map[string]bool, error) {
	pools, err := PartitionByTier(salaries)
	if err != nil {
		return nil, err
	}
	sets := make(map[domain.EducationTier]map[string]bool, len(pools))
	for tier, rows := range pools {
		set := make(map[string]bool, len(rows))
		for _, row := range rows {
			set[row.Profession] = true
		}
		sets[tier] = set
	}
	return sets, nil
}
