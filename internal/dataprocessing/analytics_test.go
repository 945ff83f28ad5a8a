package dataprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banksynth/pkg/contracts/domain"
)

// analyticRecords builds a small merged table with known values. Tenure
// is i+1 and every numeric column is an exact linear function of it, so
// correlations are exactly 1.
func analyticRecords(n int) []domain.MergedRecord {
	records := make([]domain.MergedRecord, n)
	for i := 0; i < n; i++ {
		tenure := i + 1
		salary := float64(1000 * tenure)
		balance := 0.2 * float64(tenure) * salary
		customer := testCustomer(10_000_001+i, salary)
		customer.Age = 20 + tenure
		if i%2 == 0 {
			customer.Education = domain.TierSecondary
			customer.Profession = "Labourer"
		}
		records[i] = domain.MergedRecord{
			Customer:        customer,
			Account:         testAccount(20_000_001+i, customer.ID, tenure, balance),
			CleanedBalance:  balance,
			CleanedInterest: balance * (float64(tenure) / 12) * 0.03,
		}
	}
	return records
}

func TestGroupSummaryByEducation(t *testing.T) {
	records := analyticRecords(6)

	stats, err := GroupSummary(records, GroupByEducation, MetricSalary)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Tier order, not alphabetical: Secondary before Higher.
	assert.Equal(t, "Secondary", stats[0].Group)
	assert.Equal(t, "Higher", stats[1].Group)

	// Secondary rows hold salaries 1000, 3000, 5000.
	secondary := stats[0]
	assert.Equal(t, 3, secondary.Count)
	assert.Equal(t, 0, secondary.Missing)
	assert.Equal(t, 1000.0, secondary.Min)
	assert.Equal(t, 3000.0, secondary.Median)
	assert.Equal(t, 5000.0, secondary.Max)
	assert.Equal(t, 3000.0, secondary.Mean)
	assert.InDelta(t, 2000.0, secondary.SD, 1e-9)
	assert.Equal(t, 2000.0, secondary.Q1)
	assert.Equal(t, 4000.0, secondary.Q3)
}

func TestGroupSummaryCountsMissing(t *testing.T) {
	records := analyticRecords(4)
	records[1].CleanedBalance = math.NaN()

	stats, err := GroupSummary(records, GroupByProfession, MetricCleanedBalance)
	require.NoError(t, err)

	total := 0
	missing := 0
	for _, s := range stats {
		total += s.Count
		missing += s.Missing
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, 1, missing)
}

func TestGroupSummaryUnknownInputs(t *testing.T) {
	records := analyticRecords(2)

	_, err := GroupSummary(records, GroupKey("postcode"), MetricSalary)
	assert.Error(t, err)
	_, err = GroupSummary(records, GroupByEducation, Metric("shoe_size"))
	assert.Error(t, err)
}

func TestCorrelatePerfectlyLinear(t *testing.T) {
	records := analyticRecords(20)

	matrix, err := Correlate(records)
	require.NoError(t, err)
	require.Len(t, matrix.Values, 5)
	assert.Equal(t, []string{"age", "salary", "cleaned_balance", "cleaned_interest", "tenure"}, matrix.Labels)

	// Age and tenure are exactly linear in the row index and salary is
	// linear in tenure, so those pairs correlate at exactly 1.000.
	ageIdx, salaryIdx, tenureIdx := 0, 1, 4
	assert.Equal(t, 1.0, matrix.Values[ageIdx][ageIdx])
	assert.Equal(t, 1.0, matrix.Values[ageIdx][tenureIdx])
	assert.Equal(t, 1.0, matrix.Values[salaryIdx][tenureIdx])

	// Symmetry and the rounded range hold everywhere.
	for i := range matrix.Values {
		for j := range matrix.Values[i] {
			assert.Equal(t, matrix.Values[i][j], matrix.Values[j][i])
			assert.LessOrEqual(t, math.Abs(matrix.Values[i][j]), 1.0)
		}
	}
}

func TestCorrelateTooFewRows(t *testing.T) {
	_, err := Correlate(analyticRecords(1))
	assert.Error(t, err)
}

func TestPearsonExcludesNaNPairs(t *testing.T) {
	x := []float64{1, 2, math.NaN(), 4, 5}
	y := []float64{2, 4, 6, 8, math.NaN()}

	// Only rows 0, 1, 3 survive; they are exactly linear.
	assert.InDelta(t, 1.0, pearson(x, y), 1e-12)
}

func TestPearsonZeroVariance(t *testing.T) {
	x := []float64{3, 3, 3}
	y := []float64{1, 2, 3}
	assert.True(t, math.IsNaN(pearson(x, y)))
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	assert.Equal(t, 1.75, quantile(sorted, 0.25))
	assert.Equal(t, 2.5, quantile(sorted, 0.5))
	assert.Equal(t, 3.25, quantile(sorted, 0.75))
	assert.Equal(t, 1.0, quantile(sorted, 0))
	assert.Equal(t, 4.0, quantile(sorted, 1))
}
