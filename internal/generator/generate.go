package generator

import (
	"context"
	"fmt"
	"log/slog"

	"banksynth/internal/config"
	"banksynth/internal/reference"
	"banksynth/internal/sampling"
	"banksynth/pkg/contracts/domain"
)

// Pipeline runs the full generation sequence against loaded reference
// tables. Every sampling stage gets its own generator seeded from
// config, so two runs with the same configuration produce identical
// tables.
type Pipeline struct {
	cfg    config.GenerationConfig
	logger *slog.Logger
}

// NewPipeline creates a generation pipeline.
func NewPipeline(cfg config.GenerationConfig, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run generates the Customer and Account tables.
func (p *Pipeline) Run(ctx context.Context, tables *reference.Tables) ([]domain.Customer, []domain.Account, error) {
	n := p.cfg.Rows
	seeds := p.cfg.Seeds

	p.logger.InfoContext(ctx, "generating customer table", slog.Int("rows", n))

	ids, err := SampleIDs(sampling.NewStage(seeds.CustomerIDs), n)
	if err != nil {
		return nil, nil, fmt.Errorf("sampling customer ids: %w", err)
	}

	names, err := SampleNames(sampling.NewStage(seeds.Names), tables.Names, tables.Surnames, n)
	if err != nil {
		return nil, nil, fmt.Errorf("sampling names: %w", err)
	}

	ages, err := SampleAges(sampling.NewStage(seeds.Demographics), DefaultAgeBrackets, n)
	if err != nil {
		return nil, nil, fmt.Errorf("sampling ages: %w", err)
	}

	jobs, err := SampleEmployment(sampling.NewStage(seeds.Employment),
		tables.Salaries, DefaultTierWeights, p.cfg.SalaryNoiseSD, n)
	if err != nil {
		return nil, nil, fmt.Errorf("sampling employment: %w", err)
	}

	addresses, err := SampleAddresses(sampling.NewStage(seeds.Addresses),
		sampling.NewStage(seeds.AddressMask), tables.Streets, p.cfg.AddressMissingRate, n)
	if err != nil {
		return nil, nil, fmt.Errorf("sampling addresses: %w", err)
	}

	customers, err := AssembleCustomers(ids, names, ages, jobs, addresses)
	if err != nil {
		return nil, nil, fmt.Errorf("assembling customers: %w", err)
	}

	refDate, err := p.cfg.ParseReferenceDate()
	if err != nil {
		return nil, nil, err
	}

	p.logger.InfoContext(ctx, "generating account table", slog.Int("rows", n))

	accounts, err := GenerateAccounts(
		sampling.NewStage(seeds.AccountIDs),
		sampling.NewStage(seeds.OpeningDates),
		sampling.NewStage(seeds.BalanceMask),
		customers,
		AccountParams{
			BalanceFactor:      p.cfg.BalanceFactor,
			AnnualInterestRate: p.cfg.AnnualInterestRate,
			MissingRate:        p.cfg.BalanceMissingRate,
			ReferenceDate:      refDate,
		})
	if err != nil {
		return nil, nil, fmt.Errorf("generating accounts: %w", err)
	}

	missingAddresses := 0
	for _, c := range customers {
		if !c.HasAddress() {
			missingAddresses++
		}
	}
	missingBalances := 0
	for _, a := range accounts {
		if a.BalanceMissing() {
			missingBalances++
		}
	}
	p.logger.InfoContext(ctx, "generation complete",
		slog.Int("customers", len(customers)),
		slog.Int("accounts", len(accounts)),
		slog.Int("missing_addresses", missingAddresses),
		slog.Int("missing_balances", missingBalances))

	return customers, accounts, nil
}
