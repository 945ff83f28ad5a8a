package dataprocessing

import (
	"fmt"
	"math"
	"sort"

	"banksynth/internal/errors"
	"banksynth/pkg/contracts/domain"
)

// GroupKey selects the categorical column grouped summaries run over.
type GroupKey string

const (
	GroupByEducation  GroupKey = "education"
	GroupByProfession GroupKey = "profession"
)

// Metric selects the numeric column being summarized or correlated.
type Metric string

const (
	MetricAge             Metric = "age"
	MetricSalary          Metric = "salary"
	MetricCleanedBalance  Metric = "cleaned_balance"
	MetricCleanedInterest Metric = "cleaned_interest"
	MetricTenure          Metric = "tenure"
)

// CorrelationMetrics is the fixed column set of the correlation matrix.
var CorrelationMetrics = []Metric{
	MetricAge, MetricSalary, MetricCleanedBalance, MetricCleanedInterest, MetricTenure,
}

// GroupStat is the descriptive summary of one group.
type GroupStat struct {
	Group   string  `json:"group" csv:"Group"`
	Min     float64 `json:"min" csv:"Min"`
	Q1      float64 `json:"q1" csv:"Q1"`
	Median  float64 `json:"median" csv:"Median"`
	Q3      float64 `json:"q3" csv:"Q3"`
	Max     float64 `json:"max" csv:"Max"`
	Mean    float64 `json:"mean" csv:"Mean"`
	SD      float64 `json:"sd" csv:"SD"`
	Count   int     `json:"count" csv:"Count"`
	Missing int     `json:"missing" csv:"Missing"`
}

// CorrelationMatrix is a labeled pairwise Pearson matrix, rounded to 3
// decimals.
type CorrelationMatrix struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
}

// GroupSummary groups the merged table by key and summarizes the target
// metric per group: min, quartiles, max, mean, sample standard
// deviation, observed count and missing count. Education groups come
// out in tier order, professions alphabetically.
func GroupSummary(records []domain.MergedRecord, key GroupKey, target Metric) ([]GroupStat, error) {
	getMetric, err := metricGetter(target)
	if err != nil {
		return nil, err
	}
	getGroup, err := groupGetter(key)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]float64)
	missing := make(map[string]int)
	for _, r := range records {
		group := getGroup(r)
		v := getMetric(r)
		if math.IsNaN(v) {
			missing[group]++
			if _, ok := grouped[group]; !ok {
				grouped[group] = nil
			}
			continue
		}
		grouped[group] = append(grouped[group], v)
	}

	stats := make([]GroupStat, 0, len(grouped))
	for group, values := range grouped {
		stat := GroupStat{Group: group, Count: len(values), Missing: missing[group]}
		if len(values) > 0 {
			sorted := append([]float64(nil), values...)
			sort.Float64s(sorted)
			stat.Min = sorted[0]
			stat.Q1 = quantile(sorted, 0.25)
			stat.Median = quantile(sorted, 0.5)
			stat.Q3 = quantile(sorted, 0.75)
			stat.Max = sorted[len(sorted)-1]
			stat.Mean = mean(values)
			stat.SD = sampleSD(values, stat.Mean)
		}
		stats = append(stats, stat)
	}

	sortGroups(stats, key)
	return stats, nil
}

// Correlate computes the pairwise Pearson correlation matrix over the
// fixed metric set. Post-imputation there are no missing values in any
// of the five columns, but NaN rows are excluded pairwise anyway so the
// matrix stays well defined on partially cleaned data.
func Correlate(records []domain.MergedRecord) (*CorrelationMatrix, error) {
	if len(records) < 2 {
		return nil, errors.NewValidationError("correlation needs at least two rows")
	}

	columns := make([][]float64, len(CorrelationMetrics))
	labels := make([]string, len(CorrelationMetrics))
	for i, metric := range CorrelationMetrics {
		get, err := metricGetter(metric)
		if err != nil {
			return nil, err
		}
		labels[i] = string(metric)
		column := make([]float64, len(records))
		for j, r := range records {
			column[j] = get(r)
		}
		columns[i] = column
	}

	values := make([][]float64, len(columns))
	for i := range columns {
		values[i] = make([]float64, len(columns))
		for j := range columns {
			values[i][j] = round3(pearson(columns[i], columns[j]))
		}
	}

	return &CorrelationMatrix{Labels: labels, Values: values}, nil
}

func metricGetter(m Metric) (func(domain.MergedRecord) float64, error) {
	switch m {
	case MetricAge:
		return func(r domain.MergedRecord) float64 { return float64(r.Customer.Age) }, nil
	case MetricSalary:
		return func(r domain.MergedRecord) float64 { return r.Customer.MonthlySalary }, nil
	case MetricCleanedBalance:
		return func(r domain.MergedRecord) float64 { return r.CleanedBalance }, nil
	case MetricCleanedInterest:
		return func(r domain.MergedRecord) float64 { return r.CleanedInterest }, nil
	case MetricTenure:
		return func(r domain.MergedRecord) float64 { return float64(r.Account.TenureMonths) }, nil
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown metric %q", m))
	}
}

func groupGetter(k GroupKey) (func(domain.MergedRecord) string, error) {
	switch k {
	case GroupByEducation:
		return func(r domain.MergedRecord) string { return string(r.Customer.Education) }, nil
	case GroupByProfession:
		return func(r domain.MergedRecord) string { return r.Customer.Profession }, nil
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown group key %q", k))
	}
}

func sortGroups(stats []GroupStat, key GroupKey) {
	if key == GroupByEducation {
		sort.Slice(stats, func(i, j int) bool {
			return domain.EducationTier(stats[i].Group).Less(domain.EducationTier(stats[j].Group))
		})
		return
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Group < stats[j].Group })
}

// quantile interpolates linearly between closest ranks of an ascending
// sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleSD is the n-1 standard deviation; zero for singleton groups.
func sampleSD(values []float64, mu float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mu
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// pearson computes the correlation of two equal-length columns,
// excluding any row where either side is NaN.
func pearson(x, y []float64) float64 {
	var xs, ys []float64
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}

	mx, my := mean(xs), mean(ys)
	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}

func round3(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	return math.Round(v*1000) / 1000
}
