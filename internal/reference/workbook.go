package reference

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"banksynth/internal/errors"
)

// LoadNameRef reads the baby-name workbook and returns the
// gender-tagged first-name list. The workbook must contain a sheet with
// "gender" and "name" header columns; sheet and column positions are
// discovered, not assumed.
func LoadNameRef(path string) ([]NameRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewSourceUnavailableError(
			fmt.Sprintf("failed to open names workbook %s", path), err)
	}
	defer f.Close()

	rows, cols, err := findSheet(f, []string{"Names", "Baby Names"}, []string{"gender", "name"})
	if err != nil {
		return nil, err
	}

	var names []NameRow
	for i, row := range rows[1:] {
		gender := strings.ToLower(cell(row, cols["gender"]))
		name := strings.TrimSpace(cell(row, cols["name"]))
		if gender == "" && name == "" {
			continue
		}
		if gender != TagGirl && gender != TagBoy {
			slog.Warn("skipping name row with unknown gender tag",
				slog.Int("row", i+2), slog.String("gender", gender))
			continue
		}
		if name == "" {
			continue
		}
		names = append(names, NameRow{Gender: gender, Name: name})
	}

	if len(names) == 0 {
		return nil, errors.NewSourceUnavailableError(
			fmt.Sprintf("names workbook %s contains no usable rows", path), nil)
	}

	slog.Info("loaded first-name reference",
		slog.String("path", path), slog.Int("rows", len(names)))
	return names, nil
}

// LoadSalaryRef reads the profession/salary workbook: profession,
// qualification label and average weekly earnings per row.
func LoadSalaryRef(path string) ([]SalaryRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewSourceUnavailableError(
			fmt.Sprintf("failed to open salary workbook %s", path), err)
	}
	defer f.Close()

	rows, cols, err := findSheet(f, []string{"Salaries", "Earnings"},
		[]string{"profession", "qualification", "weekly"})
	if err != nil {
		return nil, err
	}

	var salaries []SalaryRow
	for i, row := range rows[1:] {
		profession := strings.TrimSpace(cell(row, cols["profession"]))
		qualification := strings.TrimSpace(cell(row, cols["qualification"]))
		raw := strings.TrimSpace(cell(row, cols["weekly"]))
		if profession == "" && qualification == "" && raw == "" {
			continue
		}

		earnings, err := parseMoney(raw)
		if err != nil {
			return nil, errors.NewParsingError(
				fmt.Sprintf("bad weekly earnings %q for profession %q", raw, profession),
				err).WithContext("row", i+2)
		}

		salaries = append(salaries, SalaryRow{
			Profession:        profession,
			Qualification:     qualification,
			AvgWeeklyEarnings: earnings,
		})
	}

	if len(salaries) == 0 {
		return nil, errors.NewSourceUnavailableError(
			fmt.Sprintf("salary workbook %s contains no usable rows", path), nil)
	}

	slog.Info("loaded salary reference",
		slog.String("path", path), slog.Int("rows", len(salaries)))
	return salaries, nil
}

// findSheet locates the sheet holding the reference table. It tries the
// expected sheet names first, then scans every sheet for a header row
// containing all wanted column keywords. The returned map gives the
// column index per keyword.
func findSheet(f *excelize.File, preferred []string, wantCols []string) ([][]string, map[string]int, error) {
	candidates := append([]string{}, preferred...)
	candidates = append(candidates, f.GetSheetList()...)

	for _, name := range candidates {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) < 2 {
			continue
		}
		if cols, ok := mapColumns(rows[0], wantCols); ok {
			return rows, cols, nil
		}
	}

	return nil, nil, errors.NewSchemaMismatchError(
		fmt.Sprintf("no sheet with columns %v found", wantCols), nil)
}

// mapColumns maps each wanted keyword to the index of the first header
// containing it (case-insensitive).
func mapColumns(header []string, wantCols []string) (map[string]int, bool) {
	cols := make(map[string]int, len(wantCols))
	for _, want := range wantCols {
		found := false
		for j, h := range header {
			if strings.Contains(strings.ToLower(strings.TrimSpace(h)), want) {
				cols[want] = j
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return cols, true
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseMoney parses a currency cell, tolerating "$" and thousands
// separators.
func parseMoney(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "$")
	return strconv.ParseFloat(cleaned, 64)
}
