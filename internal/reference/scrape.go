package reference

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"banksynth/internal/errors"
)

// firstTableJS extracts the first HTML table on the page as a row-major
// string matrix. The surname source publishes its ranking as the first
// table, so no selector configuration is needed.
const firstTableJS = `(() => {
	const table = document.querySelector("table");
	if (!table) { return []; }
	return Array.from(table.rows).map(r => Array.from(r.cells).map(c => c.innerText.trim()));
})()`

// LoadSurnameRef scrapes the ranked surname table from the configured
// page. The fetch is a single scoped attempt bounded by timeout; any
// failure is fatal to the run.
func LoadSurnameRef(ctx context.Context, url string, timeout time.Duration) ([]SurnameRow, error) {
	rows, err := fetchFirstTable(ctx, url, timeout)
	if err != nil {
		return nil, err
	}

	surnames, err := SurnamesFromRows(rows)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded surname reference",
		slog.String("url", url), slog.Int("rows", len(surnames)))
	return surnames, nil
}

// fetchFirstTable navigates a headless browser to url and evaluates
// firstTableJS.
func fetchFirstTable(ctx context.Context, url string, timeout time.Duration) ([][]string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var rows [][]string
	err := chromedp.Run(timeoutCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(firstTableJS, &rows),
	)
	if err != nil {
		return nil, errors.NewSourceUnavailableError(
			fmt.Sprintf("surname reference fetch failed for %s", url), err)
	}
	if len(rows) == 0 {
		return nil, errors.NewSourceUnavailableError(
			fmt.Sprintf("surname reference page %s has no table", url), nil)
	}
	return rows, nil
}

// SurnamesFromRows converts the scraped table cells into SurnameRows.
// The first row is treated as a header when its rank cell is not
// numeric. Rank and surname are expected as the first two columns.
func SurnamesFromRows(rows [][]string) ([]SurnameRow, error) {
	var surnames []SurnameRow
	for i, row := range rows {
		if len(row) < 2 {
			return nil, errors.NewSchemaMismatchError(
				fmt.Sprintf("surname table row %d has %d cells, want at least 2", i, len(row)), nil)
		}

		rank, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(row[0]), ",", ""))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, errors.NewParsingError(
				fmt.Sprintf("bad rank cell %q in surname table row %d", row[0], i), err)
		}

		surname := strings.TrimSpace(row[1])
		if surname == "" {
			continue
		}
		surnames = append(surnames, SurnameRow{Rank: rank, Surname: surname})
	}

	if len(surnames) == 0 {
		return nil, errors.NewSourceUnavailableError("surname table has no data rows", nil)
	}
	return surnames, nil
}
