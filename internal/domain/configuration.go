package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// DateLayout is the date format accepted in configuration files.
const DateLayout = "2006-01-02"

// Configuration is the on-disk representation of a projection request.
// Either CurrentAge or BirthDate identifies the saver's age; AsOf pins the
// date the age is measured at and defaults to today.
type Configuration struct {
	CurrentAge        *int            `yaml:"current_age,omitempty" json:"current_age,omitempty"`
	BirthDate         *time.Time      `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
	AsOf              *time.Time      `yaml:"as_of,omitempty" json:"as_of,omitempty"`
	CurrentSavings    decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	RetirementAge     int             `yaml:"retirement_age" json:"retirement_age"`
	YearsInRetirement int             `yaml:"years_in_retirement" json:"years_in_retirement"`
	AnnualGrowthRate  decimal.Decimal `yaml:"annual_growth_rate" json:"annual_growth_rate"`
}

// NewConfiguration wraps a parameter set with an explicit current age.
func NewConfiguration(p Parameters) *Configuration {
	age := p.CurrentAge
	return &Configuration{
		CurrentAge:        &age,
		CurrentSavings:    p.CurrentSavings,
		RetirementAge:     p.RetirementAge,
		YearsInRetirement: p.YearsInRetirement,
		AnnualGrowthRate:  p.AnnualGrowthRate,
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for Configuration
func (c *Configuration) UnmarshalYAML(value *yaml.Node) error {
	// Decimal and date fields are read as strings and converted explicitly
	type Alias struct {
		CurrentAge        *int    `yaml:"current_age"`
		BirthDate         *string `yaml:"birth_date"`
		AsOf              *string `yaml:"as_of"`
		CurrentSavings    *string `yaml:"current_savings"`
		RetirementAge     int     `yaml:"retirement_age"`
		YearsInRetirement int     `yaml:"years_in_retirement"`
		AnnualGrowthRate  *string `yaml:"annual_growth_rate"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	c.CurrentAge = aux.CurrentAge
	c.RetirementAge = aux.RetirementAge
	c.YearsInRetirement = aux.YearsInRetirement

	var err error
	if c.BirthDate, err = parseOptionalDate("birth_date", aux.BirthDate); err != nil {
		return err
	}
	if c.AsOf, err = parseOptionalDate("as_of", aux.AsOf); err != nil {
		return err
	}
	if c.CurrentSavings, err = parseRequiredDecimal("current_savings", aux.CurrentSavings); err != nil {
		return err
	}
	if c.AnnualGrowthRate, err = parseRequiredDecimal("annual_growth_rate", aux.AnnualGrowthRate); err != nil {
		return err
	}
	return nil
}

// MarshalYAML writes decimals as plain YAML numbers rather than quoted strings.
func (c Configuration) MarshalYAML() (interface{}, error) {
	type Alias struct {
		CurrentAge        *int       `yaml:"current_age,omitempty"`
		BirthDate         string     `yaml:"birth_date,omitempty"`
		AsOf              string     `yaml:"as_of,omitempty"`
		CurrentSavings    *yaml.Node `yaml:"current_savings"`
		RetirementAge     int        `yaml:"retirement_age"`
		YearsInRetirement int        `yaml:"years_in_retirement"`
		AnnualGrowthRate  *yaml.Node `yaml:"annual_growth_rate"`
	}
	out := Alias{
		CurrentAge:        c.CurrentAge,
		CurrentSavings:    decimalNode(c.CurrentSavings),
		RetirementAge:     c.RetirementAge,
		YearsInRetirement: c.YearsInRetirement,
		AnnualGrowthRate:  decimalNode(c.AnnualGrowthRate),
	}
	if c.BirthDate != nil {
		out.BirthDate = c.BirthDate.Format(DateLayout)
	}
	if c.AsOf != nil {
		out.AsOf = c.AsOf.Format(DateLayout)
	}
	return out, nil
}

func decimalNode(d decimal.Decimal) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: d.String()}
}

func parseOptionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *raw)
	if err != nil {
		// accept full RFC 3339 timestamps as well
		if t, err = time.Parse(time.RFC3339, *raw); err != nil {
			return nil, fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", field, *raw)
		}
	}
	return &t, nil
}

func parseRequiredDecimal(field string, raw *string) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Zero, fmt.Errorf("%s is required", field)
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, *raw, err)
	}
	return d, nil
}
