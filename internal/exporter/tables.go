package exporter

import (
	"math"
	"strconv"

	"banksynth/internal/dataprocessing"
	"banksynth/pkg/contracts/domain"
)

// Column headers for the exported tables. Merged output is the customer
// columns followed by the account columns and the cleaned pair.
var (
	CustomerHeaders = []string{
		"CustomerID", "FirstName", "Surname", "Gender", "AgeBracket",
		"Age", "Education", "Profession", "MonthlySalary", "Address",
	}
	AccountHeaders = []string{
		"AccountID", "CustomerID", "OpenedAt", "TenureMonths", "Balance", "Interest",
	}
	MergedHeaders = append(append([]string{}, CustomerHeaders...),
		"AccountID", "OpenedAt", "TenureMonths", "Balance", "Interest",
		"CleanedBalance", "CleanedInterest")
	GroupStatHeaders = []string{
		"Group", "Min", "Q1", "Median", "Q3", "Max", "Mean", "SD", "Count", "Missing",
	}
)

const dateLayout = "2006-01-02"

// CustomerRows renders the customer table. Masked addresses come out as
// empty cells.
func CustomerRows(customers []domain.Customer) [][]string {
	rows := make([][]string, len(customers))
	for i, c := range customers {
		rows[i] = []string{
			strconv.Itoa(c.ID),
			c.FirstName,
			c.Surname,
			string(c.Gender),
			c.AgeBracket,
			strconv.Itoa(c.Age),
			string(c.Education),
			c.Profession,
			formatFloat(c.MonthlySalary),
			c.Address,
		}
	}
	return rows
}

// AccountRows renders the account table. Missing balances and interests
// come out as empty cells rather than the literal "NaN".
func AccountRows(accounts []domain.Account) [][]string {
	rows := make([][]string, len(accounts))
	for i, a := range accounts {
		rows[i] = []string{
			strconv.Itoa(a.ID),
			strconv.Itoa(a.CustomerID),
			a.OpenedAt.Format(dateLayout),
			strconv.Itoa(a.TenureMonths),
			formatFloat(a.Balance),
			formatFloat(a.Interest),
		}
	}
	return rows
}

// MergedRows renders the joined and cleaned table.
func MergedRows(records []domain.MergedRecord) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		row := CustomerRows([]domain.Customer{r.Customer})[0]
		row = append(row,
			strconv.Itoa(r.Account.ID),
			r.Account.OpenedAt.Format(dateLayout),
			strconv.Itoa(r.Account.TenureMonths),
			formatFloat(r.Account.Balance),
			formatFloat(r.Account.Interest),
			formatFloat(r.CleanedBalance),
			formatFloat(r.CleanedInterest),
		)
		rows[i] = row
	}
	return rows
}

// GroupStatRows renders one grouped summary table.
func GroupStatRows(stats []dataprocessing.GroupStat) [][]string {
	rows := make([][]string, len(stats))
	for i, s := range stats {
		rows[i] = []string{
			s.Group,
			formatFloat(s.Min),
			formatFloat(s.Q1),
			formatFloat(s.Median),
			formatFloat(s.Q3),
			formatFloat(s.Max),
			formatFloat(s.Mean),
			formatFloat(s.SD),
			strconv.Itoa(s.Count),
			strconv.Itoa(s.Missing),
		}
	}
	return rows
}

// CorrelationRows renders the correlation matrix with a leading label
// column. The header row is the same label list prefixed by an empty
// corner cell.
func CorrelationRows(matrix *dataprocessing.CorrelationMatrix) (headers []string, rows [][]string) {
	headers = append([]string{""}, matrix.Labels...)
	rows = make([][]string, len(matrix.Values))
	for i, values := range matrix.Values {
		row := make([]string, 0, len(values)+1)
		row = append(row, matrix.Labels[i])
		for _, v := range values {
			row = append(row, formatFloat(v))
		}
		rows[i] = row
	}
	return headers, rows
}

// formatFloat renders a float without trailing zero noise; NaN becomes
// an empty cell.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
