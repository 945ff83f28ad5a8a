package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration. Built-in defaults
// are overlaid by an optional YAML file, which is overlaid by
// BANKSYNTH_* environment variables; env wins. The envconfig tags carry
// no default values on purpose: a default tag would make envconfig
// rewrite every unset field and wipe out the file overlay.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Sources    SourcesConfig    `yaml:"sources" envconfig:"SOURCES"`
	Generation GenerationConfig `yaml:"generation" envconfig:"GENERATION"`
	Output     OutputConfig     `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// SourcesConfig locates the four external reference sources.
type SourcesConfig struct {
	NamesWorkbook  string        `yaml:"names_workbook" envconfig:"NAMES_WORKBOOK" validate:"required"`
	SalaryWorkbook string        `yaml:"salary_workbook" envconfig:"SALARY_WORKBOOK" validate:"required"`
	SurnamesURL    string        `yaml:"surnames_url" envconfig:"SURNAMES_URL" validate:"required,url"`
	StreetsURL     string        `yaml:"streets_url" envconfig:"STREETS_URL" validate:"required,url"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout" envconfig:"FETCH_TIMEOUT" validate:"gt=0"`
	FetchRPS       float64       `yaml:"fetch_rps" envconfig:"FETCH_RPS" validate:"gt=0"`
}

// SeedConfig carries one explicit seed per sampling stage. Each stage
// owns its own generator, so reordering stages never changes the draws
// within a stage.
type SeedConfig struct {
	Names        int64 `yaml:"names" envconfig:"NAMES"`
	CustomerIDs  int64 `yaml:"customer_ids" envconfig:"CUSTOMER_IDS"`
	Demographics int64 `yaml:"demographics" envconfig:"DEMOGRAPHICS"`
	Employment   int64 `yaml:"employment" envconfig:"EMPLOYMENT"`
	Addresses    int64 `yaml:"addresses" envconfig:"ADDRESSES"`
	AddressMask  int64 `yaml:"address_mask" envconfig:"ADDRESS_MASK"`
	AccountIDs   int64 `yaml:"account_ids" envconfig:"ACCOUNT_IDS"`
	OpeningDates int64 `yaml:"opening_dates" envconfig:"OPENING_DATES"`
	BalanceMask  int64 `yaml:"balance_mask" envconfig:"BALANCE_MASK"`
}

// GenerationConfig holds the knobs of the synthetic pipeline.
type GenerationConfig struct {
	Rows               int        `yaml:"rows" envconfig:"ROWS" validate:"min=1"`
	Seeds              SeedConfig `yaml:"seeds" envconfig:"SEEDS"`
	AddressMissingRate float64    `yaml:"address_missing_rate" envconfig:"ADDRESS_MISSING_RATE" validate:"gte=0,lt=1"`
	BalanceMissingRate float64    `yaml:"balance_missing_rate" envconfig:"BALANCE_MISSING_RATE" validate:"gte=0,lt=1"`
	SalaryNoiseSD      float64    `yaml:"salary_noise_sd" envconfig:"SALARY_NOISE_SD" validate:"gte=0"`
	BalanceFactor      float64    `yaml:"balance_factor" envconfig:"BALANCE_FACTOR" validate:"gt=0"`
	AnnualInterestRate float64    `yaml:"annual_interest_rate" envconfig:"ANNUAL_INTEREST_RATE" validate:"gt=0"`
	ReferenceDate      string     `yaml:"reference_date" envconfig:"REFERENCE_DATE" validate:"required"`
}

// OutputConfig contains export paths.
type OutputConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR"`
}

// defaultConfig returns the built-in defaults the overlays start from.
func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "both",
			FilePath: "logs/banksynth.log",
		},
		Sources: SourcesConfig{
			NamesWorkbook:  "refs/babynames.xlsx",
			SalaryWorkbook: "refs/salaries.xlsx",
			SurnamesURL:    "https://en.wikipedia.org/wiki/List_of_most_common_surnames_in_Oceania",
			StreetsURL:     "https://data.gov.au/data/dataset/street-names/download/street-names.csv",
			FetchTimeout:   30 * time.Second,
			FetchRPS:       2,
		},
		Generation: GenerationConfig{
			Rows: 200,
			Seeds: SeedConfig{
				Names:        11,
				CustomerIDs:  17,
				Demographics: 23,
				Employment:   29,
				Addresses:    31,
				AddressMask:  37,
				AccountIDs:   41,
				OpeningDates: 43,
				BalanceMask:  47,
			},
			AddressMissingRate: 0.05,
			BalanceMissingRate: 0.05,
			SalaryNoiseSD:      200,
			BalanceFactor:      0.2,
			AnnualInterestRate: 0.03,
			ReferenceDate:      "2024-04-01",
		},
		Output: OutputConfig{Dir: "out"},
	}
}

// ParseReferenceDate returns the fixed tenure reference date.
func (g GenerationConfig) ParseReferenceDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", g.ReferenceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reference date %q: %w", g.ReferenceDate, err)
	}
	return t, nil
}

// Load loads configuration from an optional YAML file and environment
// variables, then validates the result.
func Load() (*Config, error) {
	return LoadFrom(findConfigFile())
}

// LoadFrom is Load with an explicit config file path; an empty path
// skips the file overlay.
func LoadFrom(configFile string) (*Config, error) {
	cfg := defaultConfig()

	// YAML overlays the defaults; fields the file omits keep them.
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	// Env wins last. With no default tags envconfig touches only the
	// fields whose variables are actually set.
	if err := envconfig.Process("BANKSYNTH", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration with validator tags plus the
// cross-field rules the tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if _, err := c.Generation.ParseReferenceDate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// EnsureDirectories creates the output and log directories.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Output.Dir, filepath.Dir(c.Logging.FilePath)}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// findConfigFile checks the conventional locations for a config file.
func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}
