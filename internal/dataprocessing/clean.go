// Package dataprocessing joins the generated tables, normalizes and
// imputes them, and produces the descriptive summaries the analysis
// output is built from.
package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"banksynth/internal/errors"
	"banksynth/pkg/contracts/domain"
)

// JoinAccounts equijoins customers and accounts on the customer
// identifier. The relationship is 1:1 by construction; any missing or
// duplicate ownership is surfaced as an error rather than producing a
// short table.
func JoinAccounts(customers []domain.Customer, accounts []domain.Account) ([]domain.MergedRecord, error) {
	if len(customers) != len(accounts) {
		return nil, errors.NewValidationError(fmt.Sprintf(
			"customer and account tables disagree on row count: %d vs %d",
			len(customers), len(accounts)))
	}

	byOwner := make(map[int]domain.Account, len(accounts))
	for _, a := range accounts {
		if _, dup := byOwner[a.CustomerID]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf(
				"customer %d owns more than one account", a.CustomerID))
		}
		byOwner[a.CustomerID] = a
	}

	merged := make([]domain.MergedRecord, len(customers))
	for i, c := range customers {
		a, ok := byOwner[c.ID]
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf(
				"customer %d has no account", c.ID))
		}
		merged[i] = domain.MergedRecord{
			Customer:        c,
			Account:         a,
			CleanedBalance:  a.Balance,
			CleanedInterest: a.Interest,
		}
	}
	return merged, nil
}

// ImputationReport records what the imputation step did.
type ImputationReport struct {
	BalanceMedian    float64
	InterestMedian   float64
	BalancesImputed  int
	InterestsImputed int
}

// ImputeMedians fills missing cleaned balance and interest values with
// each column's overall median over the observed values. Observed
// values pass through untouched; addresses are deliberately left
// unimputed. The global median is a documented simplification: a
// subgroup median per profession or tier would be less biased, but the
// simple behavior is the modeled one.
func ImputeMedians(ctx context.Context, logger *slog.Logger, records []domain.MergedRecord) (ImputationReport, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(records) == 0 {
		return ImputationReport{}, errors.NewValidationError("cannot impute an empty table")
	}

	balances := observedValues(records, func(r domain.MergedRecord) float64 { return r.Account.Balance })
	interests := observedValues(records, func(r domain.MergedRecord) float64 { return r.Account.Interest })
	if len(balances) == 0 {
		return ImputationReport{}, errors.NewValidationError("every balance is missing, median undefined")
	}

	report := ImputationReport{
		BalanceMedian:  median(balances),
		InterestMedian: median(interests),
	}

	for i := range records {
		if math.IsNaN(records[i].CleanedBalance) {
			records[i].CleanedBalance = report.BalanceMedian
			report.BalancesImputed++
		}
		if math.IsNaN(records[i].CleanedInterest) {
			records[i].CleanedInterest = report.InterestMedian
			report.InterestsImputed++
		}
	}

	logger.InfoContext(ctx, "imputed missing balance and interest values",
		slog.Float64("balance_median", report.BalanceMedian),
		slog.Float64("interest_median", report.InterestMedian),
		slog.Int("balances_imputed", report.BalancesImputed),
		slog.Int("interests_imputed", report.InterestsImputed))
	return report, nil
}

// observedValues collects the non-missing values of one column.
func observedValues(records []domain.MergedRecord, get func(domain.MergedRecord) float64) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		if v := get(r); !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	return values
}

// median returns the middle value, averaging the two central values for
// even counts. The input is copied before sorting.
func median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
