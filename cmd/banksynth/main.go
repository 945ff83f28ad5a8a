// Command banksynth generates the synthetic bank customer dataset:
// two seeded 200-row tables, their cleaned join, and the descriptive
// summaries, all exported as CSV.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"banksynth/internal/config"
	"banksynth/internal/dataprocessing"
	"banksynth/internal/exporter"
	"banksynth/internal/generator"
	"banksynth/internal/infrastructure"
	"banksynth/internal/reference"
	"banksynth/pkg/contracts/domain"
)

// flags override the corresponding config values when set.
type flags struct {
	configFile  string
	refsDir     string
	outDir      string
	surnamesURL string
	streetsURL  string
	rows        int
}

func main() {
	var f flags
	flag.StringVar(&f.configFile, "config", "", "config file path (defaults to config.yaml if present)")
	flag.StringVar(&f.refsDir, "refs", "", "directory holding the reference workbooks")
	flag.StringVar(&f.outDir, "out", "", "output directory for CSV files")
	flag.StringVar(&f.surnamesURL, "surnames-url", "", "URL of the surname reference page")
	flag.StringVar(&f.streetsURL, "streets-url", "", "URL of the street-name reference CSV")
	flag.IntVar(&f.rows, "rows", 0, "number of customers to generate")
	flag.Parse()

	if err := run(f); err != nil {
		slog.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(f flags) error {
	var cfg *config.Config
	var err error
	if f.configFile != "" {
		cfg, err = config.LoadFrom(f.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if f.refsDir != "" {
		cfg.Sources.NamesWorkbook = filepath.Join(f.refsDir, filepath.Base(cfg.Sources.NamesWorkbook))
		cfg.Sources.SalaryWorkbook = filepath.Join(f.refsDir, filepath.Base(cfg.Sources.SalaryWorkbook))
	}
	if f.surnamesURL != "" {
		cfg.Sources.SurnamesURL = f.surnamesURL
	}
	if f.streetsURL != "" {
		cfg.Sources.StreetsURL = f.streetsURL
	}
	if f.outDir != "" {
		cfg.Output.Dir = f.outDir
	}
	if f.rows > 0 {
		cfg.Generation.Rows = f.rows
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	ctx, runID := infrastructure.NewRunContext(context.Background())
	logger.InfoContext(ctx, "starting dataset generation",
		slog.String("run_id", runID),
		slog.Int("rows", cfg.Generation.Rows),
		slog.String("output_dir", cfg.Output.Dir))

	tables, err := reference.NewLoader(cfg.Sources, logger).LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading reference sources: %w", err)
	}

	customers, accounts, err := generator.NewPipeline(cfg.Generation, logger).Run(ctx, tables)
	if err != nil {
		return err
	}

	merged, err := dataprocessing.JoinAccounts(customers, accounts)
	if err != nil {
		return err
	}
	if _, err := dataprocessing.ImputeMedians(ctx, logger, merged); err != nil {
		return err
	}

	writer := exporter.NewCSVWriter(cfg.Output.Dir)
	if err := writer.WriteSimpleCSV("customers.csv", exporter.CustomerHeaders, exporter.CustomerRows(customers)); err != nil {
		return err
	}
	if err := writer.WriteSimpleCSV("accounts.csv", exporter.AccountHeaders, exporter.AccountRows(accounts)); err != nil {
		return err
	}
	if err := writer.WriteSimpleCSV("merged.csv", exporter.MergedHeaders, exporter.MergedRows(merged)); err != nil {
		return err
	}

	if err := exportSummaries(writer, merged); err != nil {
		return err
	}

	logger.InfoContext(ctx, "dataset generation complete",
		slog.Int("customers", len(customers)),
		slog.Int("accounts", len(accounts)))
	return nil
}

// exportSummaries writes the grouped descriptive statistics and the
// correlation matrix.
func exportSummaries(writer *exporter.CSVWriter, merged []domain.MergedRecord) error {
	groupings := []struct {
		file   string
		key    dataprocessing.GroupKey
		metric dataprocessing.Metric
	}{
		{"summary_salary_by_education.csv", dataprocessing.GroupByEducation, dataprocessing.MetricSalary},
		{"summary_balance_by_education.csv", dataprocessing.GroupByEducation, dataprocessing.MetricCleanedBalance},
		{"summary_interest_by_education.csv", dataprocessing.GroupByEducation, dataprocessing.MetricCleanedInterest},
		{"summary_salary_by_profession.csv", dataprocessing.GroupByProfession, dataprocessing.MetricSalary},
		{"summary_balance_by_profession.csv", dataprocessing.GroupByProfession, dataprocessing.MetricCleanedBalance},
	}
	for _, g := range groupings {
		stats, err := dataprocessing.GroupSummary(merged, g.key, g.metric)
		if err != nil {
			return err
		}
		if err := writer.WriteSimpleCSV(g.file, exporter.GroupStatHeaders, exporter.GroupStatRows(stats)); err != nil {
			return err
		}
	}

	matrix, err := dataprocessing.Correlate(merged)
	if err != nil {
		return err
	}
	headers, rows := exporter.CorrelationRows(matrix)
	return writer.WriteSimpleCSV("correlations.csv", headers, rows)
}
