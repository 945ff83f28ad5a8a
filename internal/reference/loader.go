package reference

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"banksynth/internal/config"
)

// Loader fetches all reference sources configured for a run.
type Loader struct {
	cfg     config.SourcesConfig
	logger  *slog.Logger
	client  *http.Client
	limiter *rate.Limiter
}

// NewLoader creates a reference loader from the source configuration.
func NewLoader(cfg config.SourcesConfig, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		cfg:     cfg,
		logger:  logger,
		client:  &http.Client{Timeout: cfg.FetchTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.FetchRPS), 1),
	}
}

// LoadAll loads the four reference tables concurrently. The sources are
// independent and none of them consumes pipeline randomness, so loading
// order does not affect determinism. The first failure cancels the rest
// and aborts the run; there is no retry.
func (l *Loader) LoadAll(ctx context.Context) (*Tables, error) {
	l.logger.InfoContext(ctx, "loading reference sources",
		slog.String("names_workbook", l.cfg.NamesWorkbook),
		slog.String("salary_workbook", l.cfg.SalaryWorkbook),
		slog.String("surnames_url", l.cfg.SurnamesURL),
		slog.String("streets_url", l.cfg.StreetsURL))

	tables := &Tables{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		names, err := LoadNameRef(l.cfg.NamesWorkbook)
		if err != nil {
			return err
		}
		tables.Names = names
		return nil
	})
	g.Go(func() error {
		salaries, err := LoadSalaryRef(l.cfg.SalaryWorkbook)
		if err != nil {
			return err
		}
		tables.Salaries = salaries
		return nil
	})
	g.Go(func() error {
		surnames, err := LoadSurnameRef(gctx, l.cfg.SurnamesURL, l.cfg.FetchTimeout)
		if err != nil {
			return err
		}
		tables.Surnames = surnames
		return nil
	})
	g.Go(func() error {
		streets, err := LoadStreetRef(gctx, l.client, l.limiter, l.cfg.StreetsURL)
		if err != nil {
			return err
		}
		tables.Streets = streets
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "reference sources loaded",
		slog.Int("names", len(tables.Names)),
		slog.Int("surnames", len(tables.Surnames)),
		slog.Int("salaries", len(tables.Salaries)),
		slog.Int("streets", len(tables.Streets)))
	return tables, nil
}
