// Package config loads and validates pension loss case files, and carries
// the application-level configuration for the CLI and server.
package config

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/anmacmillan/pensionloss/internal/calculation"
	"github.com/anmacmillan/pensionloss/internal/domain"
	"github.com/anmacmillan/pensionloss/internal/ogden"
)

// ErrMultiplierUnresolved is returned when the claimant's age falls outside
// the demo table band and no manual multiplier was supplied.
var ErrMultiplierUnresolved = eris.New("age outside table band; a manual multiplier is required")

// CaseFile is a complete snapshot of one claim: the method selector, the
// claimant, the tax position and the inputs for the chosen method. It is
// the schema of both the YAML case file and the server's calculate request.
type CaseFile struct {
	Method   domain.Method          `yaml:"method" json:"method"`
	Claimant domain.ClaimantProfile `yaml:"claimant" json:"claimant"`
	Tax      domain.TaxConfig       `yaml:"tax" json:"tax"`
	Simple   *domain.SimpleInputs   `yaml:"simple,omitempty" json:"simple,omitempty"`
	Complex  *domain.ComplexInputs  `yaml:"complex,omitempty" json:"complex,omitempty"`
}

// LoadCaseFile reads and validates a YAML case file.
func LoadCaseFile(filename string) (*CaseFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, eris.Wrapf(err, "read case file %s", filename)
	}
	var cf CaseFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, eris.Wrap(err, "parse case file")
	}
	if err := cf.Validate(); err != nil {
		return nil, eris.Wrap(err, "validate case file")
	}
	return &cf, nil
}

// Validate enforces the recognised input constraints. It deliberately stops
// short of business-rule validation: negative or zero money amounts pass
// through to the engine untouched.
func (cf *CaseFile) Validate() error {
	if _, err := domain.ParseMethod(string(cf.Method)); err != nil {
		return err
	}

	if !domain.ValidTaxRate(cf.Tax.Rate) {
		return fmt.Errorf("tax rate %s is not one of the recognised marginal rates (20%%, 40%%, 45%%)", cf.Tax.Rate.String())
	}
	if cf.Tax.FreeAllowance.IsNegative() {
		return fmt.Errorf("tax-free allowance cannot be negative")
	}

	switch cf.Method {
	case domain.MethodSimple:
		if cf.Simple == nil {
			return fmt.Errorf("method %q requires a simple inputs block", cf.Method)
		}
	case domain.MethodComplex:
		if cf.Complex == nil {
			return fmt.Errorf("method %q requires a complex inputs block", cf.Method)
		}
		if _, err := domain.ParseGender(string(cf.Claimant.Gender)); err != nil {
			return err
		}
		if !domain.ValidRetirementAge(cf.Claimant.RetirementAge) {
			return fmt.Errorf("retirement age %d is not one of 60, 65, 68", cf.Claimant.RetirementAge)
		}
		pct := cf.Complex.WithdrawalPct
		if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("withdrawal percentage must be between 0 and 100, got %s", pct.String())
		}
	}

	return nil
}

// Warnings reports probable input inconsistencies that do not block the
// calculation, chiefly a trial age past the target retirement age. The
// engine propagates such inputs untouched so the operator can see them.
func (cf *CaseFile) Warnings() []string {
	var warnings []string
	if cf.Method == domain.MethodComplex && cf.Claimant.YearsToRetirement() < 0 {
		warnings = append(warnings, fmt.Sprintf(
			"claimant age %d is past the target retirement age %d; years to retirement is %d and the result should not be presented as valid",
			cf.Claimant.AgeAtTrial, cf.Claimant.RetirementAge, cf.Claimant.YearsToRetirement()))
	}
	return warnings
}

// Evaluate resolves the multiplier where needed and runs the engine over the
// case snapshot. The case file itself is not mutated.
func (cf *CaseFile) Evaluate(eng *calculation.Engine, tables ogden.Provider) (*domain.CalculationResult, error) {
	switch cf.Method {
	case domain.MethodSimple:
		return eng.Simple(*cf.Simple, cf.Tax)
	case domain.MethodComplex:
		inputs := *cf.Complex
		multiplier, ok := ogden.ResolveMultiplier(tables, cf.Claimant, inputs.Multiplier)
		if !ok {
			return nil, eris.Wrapf(ErrMultiplierUnresolved, "age %d", cf.Claimant.AgeAtTrial)
		}
		inputs.Multiplier = multiplier
		return eng.Complex(cf.Claimant, inputs, cf.Tax)
	}
	return nil, fmt.Errorf("unknown method %q", cf.Method)
}

// TableRef names the demo table a complex calculation's multiplier is drawn
// from, or empty when a manual multiplier overrides the lookup (or the
// method is simple).
func (cf *CaseFile) TableRef(tables ogden.Provider) string {
	if cf.Method != domain.MethodComplex || cf.Complex == nil || !cf.Complex.Multiplier.IsZero() {
		return ""
	}
	return tables.Table(cf.Claimant.Gender).Ref
}

// ExampleCaseFile is the worked example shipped with the tool: the complex
// method with the demo table's age 50 / retire at 65 male multiplier.
func ExampleCaseFile() *CaseFile {
	return &CaseFile{
		Method: domain.MethodComplex,
		Claimant: domain.ClaimantProfile{
			AgeAtTrial:    50,
			Gender:        domain.GenderMale,
			RetirementAge: 65,
		},
		Tax: domain.TaxConfig{
			Rate:          decimal.NewFromFloat(0.40),
			FreeAllowance: decimal.Zero,
		},
		Complex: &domain.ComplexInputs{
			OldPension:     decimal.NewFromInt(20000),
			AccruedPension: decimal.NewFromInt(10000),
			NewPension:     decimal.NewFromInt(5000),
			WithdrawalPct:  decimal.NewFromInt(5),
			OldLumpFuture:  decimal.NewFromInt(60000),
			NewLumpFuture:  decimal.NewFromInt(20000),
			NewLumpNow:     decimal.NewFromInt(10000),
		},
	}
}

// SaveCaseFile writes a case file as YAML.
func SaveCaseFile(cf *CaseFile, filename string) error {
	b, err := yaml.Marshal(cf)
	if err != nil {
		return eris.Wrap(err, "marshal case file")
	}
	return os.WriteFile(filename, b, 0644)
}
