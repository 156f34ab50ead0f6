package domain

import "github.com/shopspring/decimal"

// SimpleInputs are the inputs for the contributions-based method.
type SimpleInputs struct {
	GrossSalary      decimal.Decimal `yaml:"gross_salary" json:"gross_salary"`
	ContributionRate decimal.Decimal `yaml:"contribution_rate" json:"contribution_rate"` // employer rate, percent
	PeriodYears      decimal.Decimal `yaml:"period_years" json:"period_years"`
}

// ComplexInputs are the inputs for the seven-step defined benefit method.
// All amounts are annual or lump figures in pounds. Multiplier may be left
// zero, in which case callers resolve it from the demo table; a non-zero
// value overrides the table regardless of what a lookup would return.
type ComplexInputs struct {
	OldPension     decimal.Decimal `yaml:"old_pension" json:"old_pension"`         // projected annual pension in the old job
	AccruedPension decimal.Decimal `yaml:"accrued_pension" json:"accrued_pension"` // annual pension already accrued in the old job
	NewPension     decimal.Decimal `yaml:"new_pension" json:"new_pension"`         // annual pension in the new job
	Multiplier     decimal.Decimal `yaml:"multiplier,omitempty" json:"multiplier,omitempty"`
	WithdrawalPct  decimal.Decimal `yaml:"withdrawal_pct" json:"withdrawal_pct"` // Polkey withdrawal chance, 0-100
	OldLumpFuture  decimal.Decimal `yaml:"old_lump_future" json:"old_lump_future"`
	NewLumpFuture  decimal.Decimal `yaml:"new_lump_future" json:"new_lump_future"`
	NewLumpNow     decimal.Decimal `yaml:"new_lump_now" json:"new_lump_now"` // already received, so already present value
}

// TaxConfig is the claimant's marginal tax position for the gross-up.
type TaxConfig struct {
	Rate          decimal.Decimal `yaml:"rate" json:"rate"` // fractional, e.g. 0.40
	FreeAllowance decimal.Decimal `yaml:"free_allowance" json:"free_allowance"`
}

// TaxRates are the marginal rates the tool recognises.
var TaxRates = []decimal.Decimal{
	decimal.NewFromFloat(0.20),
	decimal.NewFromFloat(0.40),
	decimal.NewFromFloat(0.45),
}

// ValidTaxRate reports whether rate is one of the recognised marginal rates.
func ValidTaxRate(rate decimal.Decimal) bool {
	for _, r := range TaxRates {
		if rate.Equal(r) {
			return true
		}
	}
	return false
}
