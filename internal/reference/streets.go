package reference

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"banksynth/internal/errors"
)

// LoadStreetRef fetches the street-address table as a remote CSV. The
// limiter keeps reference fetches polite toward the hosting server; the
// client carries the configured timeout.
func LoadStreetRef(ctx context.Context, client *http.Client, limiter *rate.Limiter, url string) ([]StreetRow, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, errors.NewSourceUnavailableError(
				fmt.Sprintf("street reference fetch cancelled for %s", url), err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewSourceUnavailableError(
			fmt.Sprintf("bad street reference URL %s", url), err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewSourceUnavailableError(
			fmt.Sprintf("street reference fetch failed for %s", url), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewSourceUnavailableError(
			fmt.Sprintf("street reference fetch for %s returned status %d", url, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewSourceUnavailableError(
			fmt.Sprintf("failed to read street reference body from %s", url), err)
	}

	streets, err := StreetsFromCSV(body)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded street reference",
		slog.String("url", url), slog.Int("rows", len(streets)))
	return streets, nil
}

// StreetsFromCSV parses the street CSV body. A UTF-8 BOM is tolerated;
// region and street columns are located by header name.
func StreetsFromCSV(body []byte) ([]StreetRow, error) {
	body = bytes.TrimPrefix(body, []byte{0xEF, 0xBB, 0xBF})

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		return nil, errors.NewParsingError("failed to parse street reference CSV", err)
	}
	if len(records) < 2 {
		return nil, errors.NewSourceUnavailableError("street reference CSV has no data rows", nil)
	}

	regionCol, streetCol := -1, -1
	for j, h := range records[0] {
		header := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(header, "region"):
			regionCol = j
		case strings.Contains(header, "street"):
			streetCol = j
		}
	}
	if regionCol == -1 || streetCol == -1 {
		return nil, errors.NewSchemaMismatchError(
			fmt.Sprintf("street reference CSV missing region or street column, header %v", records[0]), nil)
	}

	var streets []StreetRow
	for _, row := range records[1:] {
		region := cell(row, regionCol)
		street := cell(row, streetCol)
		if region == "" || street == "" {
			continue
		}
		streets = append(streets, StreetRow{RegionID: region, StreetName: street})
	}

	if len(streets) == 0 {
		return nil, errors.NewSourceUnavailableError("street reference CSV has no usable rows", nil)
	}
	return streets, nil
}
