package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banksynth/internal/errors"
	"banksynth/internal/reference"
	"banksynth/internal/sampling"
)

func TestSampleEmploymentTierConsistency(t *testing.T) {
	tables := fixtureTables()
	sets, err := TierProfessions(tables.Salaries)
	require.NoError(t, err)

	draws, err := SampleEmployment(sampling.NewStage(29), tables.Salaries, DefaultTierWeights, 200, 200)
	require.NoError(t, err)
	require.Len(t, draws, 200)

	for _, d := range draws {
		assert.True(t, sets[d.Tier][d.Profession],
			"profession %q not in tier %s pool", d.Profession, d.Tier)
	}
}

func TestSampleEmploymentSalaryRounded(t *testing.T) {
	tables := fixtureTables()
	draws, err := SampleEmployment(sampling.NewStage(29), tables.Salaries, DefaultTierWeights, 200, 200)
	require.NoError(t, err)

	for _, d := range draws {
		assert.Equal(t, 0.0, math.Mod(d.MonthlySalary, 100),
			"salary %v is not a multiple of 100", d.MonthlySalary)
		assert.Greater(t, d.MonthlySalary, 0.0)
	}
}

func TestSampleEmploymentReproducible(t *testing.T) {
	tables := fixtureTables()
	a, err := SampleEmployment(sampling.NewStage(29), tables.Salaries, DefaultTierWeights, 200, 200)
	require.NoError(t, err)
	b, err := SampleEmployment(sampling.NewStage(29), tables.Salaries, DefaultTierWeights, 200, 200)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleEmploymentTierCountsSum(t *testing.T) {
	tables := fixtureTables()
	draws, err := SampleEmployment(sampling.NewStage(5), tables.Salaries, DefaultTierWeights, 200, 200)
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, d := range draws {
		counts[string(d.Tier)]++
	}
	total := counts["Secondary"] + counts["Vocational"] + counts["Higher"]
	assert.Equal(t, 200, total)
	// Every tier should be represented in a 200-row draw with these
	// weights.
	assert.Greater(t, counts["Secondary"], 0)
	assert.Greater(t, counts["Vocational"], 0)
	assert.Greater(t, counts["Higher"], 0)
}

func TestPartitionByTierUnknownQualification(t *testing.T) {
	salaries := []reference.SalaryRow{
		{Profession: "Mystic", Qualification: "School of life", AvgWeeklyEarnings: 1000},
	}
	_, err := PartitionByTier(salaries)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeSchemaMismatch))
}

func TestPartitionByTierEmptyTier(t *testing.T) {
	// No Higher-tier rows at all.
	salaries := []reference.SalaryRow{
		{Profession: "Sales Assistant", Qualification: "No tertiary qualification", AvgWeeklyEarnings: 1100},
		{Profession: "Electrician", Qualification: "Certificate III-IV", AvgWeeklyEarnings: 1800},
	}
	_, err := PartitionByTier(salaries)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeSchemaMismatch))
}

func TestRoundToHundred(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4480.0, 4500},
		{4449.9, 4400},
		{4450.0, 4500}, // half rounds away from zero, no float drift
		{-120.0, -100},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundToHundred(tt.in), "input %v", tt.in)
	}
}
