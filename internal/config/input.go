package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/nestegg/internal/domain"
	"github.com/rpgo/nestegg/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML (or JSON) document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	params, err := ip.Parameters(config)
	if err != nil {
		return err
	}
	return params.Validate()
}

// Parameters resolves the configuration into projection parameters. The
// current age comes from current_age, or from birth_date measured at as_of
// (today when as_of is absent).
func (ip *InputParser) Parameters(config *domain.Configuration) (domain.Parameters, error) {
	age, err := ip.resolveCurrentAge(config)
	if err != nil {
		return domain.Parameters{}, err
	}
	return domain.Parameters{
		CurrentAge:        age,
		CurrentSavings:    config.CurrentSavings,
		RetirementAge:     config.RetirementAge,
		YearsInRetirement: config.YearsInRetirement,
		AnnualGrowthRate:  config.AnnualGrowthRate,
	}, nil
}

func (ip *InputParser) resolveCurrentAge(config *domain.Configuration) (int, error) {
	switch {
	case config.CurrentAge != nil && config.BirthDate != nil:
		return 0, fmt.Errorf("%w: specify either current_age or birth_date, not both", domain.ErrInvalidConfiguration)
	case config.CurrentAge != nil:
		if config.AsOf != nil {
			return 0, fmt.Errorf("%w: as_of only applies together with birth_date", domain.ErrInvalidConfiguration)
		}
		return *config.CurrentAge, nil
	case config.BirthDate != nil:
		asOf := dateutil.DateOnly(nowFunc())
		if config.AsOf != nil {
			asOf = dateutil.DateOnly(*config.AsOf)
		}
		if config.BirthDate.After(asOf) {
			return 0, fmt.Errorf("%w: birth date %s is after %s", domain.ErrInvalidConfiguration,
				config.BirthDate.Format(domain.DateLayout), asOf.Format(domain.DateLayout))
		}
		return dateutil.Age(*config.BirthDate, asOf), nil
	default:
		return 0, fmt.Errorf("%w: current_age or birth_date is required", domain.ErrInvalidConfiguration)
	}
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return domain.NewConfiguration(domain.DefaultParameters())
}
