package generator

import (
	"math"
	"time"

	"banksynth/internal/sampling"
	"banksynth/pkg/contracts/domain"
)

// Account opening dates: day capped at 30, so only February draws can
// overflow their month.
const (
	openDayMin   = 1
	openDayMax   = 30
	openYearMin  = 2000
	openYearMax  = 2023
	monthsInYear = 12
)

// AccountParams are the knobs of account generation.
type AccountParams struct {
	BalanceFactor      float64
	AnnualInterestRate float64
	MissingRate        float64
	ReferenceDate      time.Time
}

// GenerateAccounts builds one account per customer: an identifier from
// its own seeded stage, an opening date composed from independent
// day/month/year draws, and balance/interest derived from the owner's
// salary. The balance mask uses a third stage; interest is computed
// unconditionally so a NaN balance propagates into a NaN interest.
//
// A drawn day/month pair that overflows February (the 29th or 30th in a
// year without that day) is normalized by time.Date into the first days
// of March; early March is deliberately a little overrepresented rather
// than redrawing and disturbing the date stage's draw sequence.
func GenerateAccounts(idStage, dateStage, maskStage *sampling.Stage, customers []domain.Customer, params AccountParams) ([]domain.Account, error) {
	n := len(customers)
	ids, err := SampleIDs(idStage, n)
	if err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, n)
	for i, customer := range customers {
		day := dateStage.IntBetween(openDayMin, openDayMax)
		month := dateStage.IntBetween(1, monthsInYear)
		year := dateStage.IntBetween(openYearMin, openYearMax)
		opened := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

		tenure := wholeMonthsBetween(opened, params.ReferenceDate)

		balance := params.BalanceFactor * float64(tenure) * customer.MonthlySalary
		if maskStage.Mask(params.MissingRate) {
			balance = math.NaN()
		}
		interest := balance * (float64(tenure) / monthsInYear) * params.AnnualInterestRate

		accounts[i] = domain.Account{
			ID:           ids[i],
			CustomerID:   customer.ID,
			OpenedAt:     opened,
			TenureMonths: tenure,
			Balance:      balance,
			Interest:     interest,
		}
	}
	return accounts, nil
}

// wholeMonthsBetween counts full calendar months elapsed from to ref,
// flooring rather than dividing elapsed days by 30.
func wholeMonthsBetween(from, ref time.Time) int {
	months := (ref.Year()-from.Year())*monthsInYear + int(ref.Month()) - int(from.Month())
	if ref.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
