package reference

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"banksynth/internal/errors"
)

// writeWorkbook builds a single-sheet workbook with the given header
// and rows in a temp dir and returns its path.
func writeWorkbook(t *testing.T, sheet string, header []string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), sheet)

	for j, h := range header {
		col, _ := excelize.ColumnNumberToName(j + 1)
		require.NoError(t, f.SetCellValue(sheet, col+"1", h))
	}
	for i, row := range rows {
		for j, val := range row {
			col, _ := excelize.ColumnNumberToName(j + 1)
			cell := col + strconv.Itoa(i+2)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	path := filepath.Join(t.TempDir(), "ref.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadNameRef(t *testing.T) {
	path := writeWorkbook(t, "Names",
		[]string{"Gender", "Name"},
		[][]interface{}{
			{"girl", "Olivia"},
			{"boy", "Jack"},
			{"girl", "Amelia"},
			{"alien", "Zorp"}, // unknown tag, skipped
		})

	names, err := LoadNameRef(path)
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, NameRow{Gender: "girl", Name: "Olivia"}, names[0])
	assert.Equal(t, NameRow{Gender: "boy", Name: "Jack"}, names[1])
}

func TestLoadNameRefSheetDiscovery(t *testing.T) {
	// Unconventional sheet name still works when the header matches.
	path := writeWorkbook(t, "Sheet99",
		[]string{"Gender", "First Name"},
		[][]interface{}{{"boy", "Noah"}})

	names, err := LoadNameRef(path)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "Noah", names[0].Name)
}

func TestLoadNameRefMissingColumn(t *testing.T) {
	path := writeWorkbook(t, "Names",
		[]string{"Gender", "Rank"},
		[][]interface{}{{"girl", 1}})

	_, err := LoadNameRef(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeSchemaMismatch))
}

func TestLoadNameRefFileMissing(t *testing.T) {
	_, err := LoadNameRef(filepath.Join(t.TempDir(), "nope.xlsx"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeSourceUnavailable))
}

func TestLoadSalaryRef(t *testing.T) {
	path := writeWorkbook(t, "Salaries",
		[]string{"Profession", "Qualification", "Average Weekly Earnings"},
		[][]interface{}{
			{"Sales Assistant", "No tertiary qualification", "1,124.40"},
			{"Electrician", "Certificate III-IV", "$1,876.00"},
			{"Accountant", "Bachelor degree", 2135.5},
		})

	salaries, err := LoadSalaryRef(path)
	require.NoError(t, err)
	require.Len(t, salaries, 3)
	assert.Equal(t, "Sales Assistant", salaries[0].Profession)
	assert.InDelta(t, 1124.40, salaries[0].AvgWeeklyEarnings, 1e-9)
	assert.InDelta(t, 1876.00, salaries[1].AvgWeeklyEarnings, 1e-9)
	assert.Equal(t, "Bachelor degree", salaries[2].Qualification)
}

func TestLoadSalaryRefBadEarnings(t *testing.T) {
	path := writeWorkbook(t, "Salaries",
		[]string{"Profession", "Qualification", "Average Weekly Earnings"},
		[][]interface{}{{"Plumber", "Certificate III-IV", "n/a"}})

	_, err := LoadSalaryRef(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeParsing))
}
