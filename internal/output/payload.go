// Package output builds the report payload and renders it through pluggable
// formatters. The payload is the sole interface to document export: a flat
// record of primitives with a fixed, versioned schema.
package output

import (
	"time"

	"github.com/google/uuid"

	"github.com/anmacmillan/pensionloss/internal/domain"
	"github.com/anmacmillan/pensionloss/pkg/money"
)

// SchemaVersion identifies the payload layout for downstream consumers.
const SchemaVersion = "1"

const (
	// Basis names the guidance the calculation encodes.
	Basis = "Principles for Compensating Pension Loss (4th Ed, 2021) & Ogden Tables 8th Ed."
	// Disclaimer is appended to every exported document.
	Disclaimer = "DISCLAIMER: Draft calculation for estimation only. Uses Term Certain discounting for lump sums."

	discountRateLabel = "-0.25% (Term Certain)"
	dateLayout        = "02 January 2006"
)

// ReportPayload is one flat record of inputs and results. Monetary amounts
// are fixed two-decimal strings, the discount factor four decimals. Field
// names are stable across methods where meaningful; complex-only fields are
// present only for the complex method.
type ReportPayload struct {
	SchemaVersion string `json:"schema_version"`
	ReportID      string `json:"report_id"`
	GeneratedAt   string `json:"generated_at"`
	Method        string `json:"method"`
	Basis         string `json:"basis"`
	Disclaimer    string `json:"disclaimer"`

	TaxRate          string `json:"tax_rate"`
	TaxFreeAllowance string `json:"tax_free_allowance"`

	// Simple method inputs.
	GrossSalary      string `json:"gross_salary,omitempty"`
	ContributionRate string `json:"contribution_rate,omitempty"`
	PeriodYears      string `json:"period_years,omitempty"`

	// Complex method inputs.
	ClaimantAge       int    `json:"claimant_age,omitempty"`
	Gender            string `json:"gender,omitempty"`
	RetirementAge     int    `json:"retirement_age,omitempty"`
	YearsToRetirement int    `json:"years_to_retirement,omitempty"`
	TableRef          string `json:"table_ref,omitempty"`
	Multiplier        string `json:"multiplier,omitempty"`
	DiscountRate      string `json:"discount_rate,omitempty"`
	WithdrawalPct     string `json:"withdrawal_pct,omitempty"`
	OldLumpFuture     string `json:"old_lump_future,omitempty"`
	NewLumpFuture     string `json:"new_lump_future,omitempty"`
	NewLumpNow        string `json:"new_lump_now,omitempty"`

	// Complex method results.
	NetAnnualLoss       string `json:"net_annual_loss,omitempty"`
	CapitalValue        string `json:"capital_value,omitempty"`
	DiscountFactor      string `json:"discount_factor,omitempty"`
	PVOldLump           string `json:"pv_old_lump,omitempty"`
	PVNewLump           string `json:"pv_new_lump,omitempty"`
	LumpSumLoss         string `json:"lump_sum_loss,omitempty"`
	WithdrawalDeduction string `json:"withdrawal_deduction,omitempty"`

	// Shared results.
	NetTotal       string `json:"net_total"`
	TaxablePortion string `json:"taxable_portion"`
	GrossTotal     string `json:"gross_total"`
	TaxElement     string `json:"tax_element"`

	// Award component breakdown; the three values sum to gross_total.
	BreakdownPensionCapital string `json:"breakdown_pension_capital"`
	BreakdownLumpSumLoss    string `json:"breakdown_lump_sum_loss"`
	BreakdownTaxGrossUp     string `json:"breakdown_tax_gross_up"`
}

// PayloadInput is the resolved input snapshot the payload is built from.
type PayloadInput struct {
	Method   domain.Method
	Claimant domain.ClaimantProfile
	Tax      domain.TaxConfig
	Simple   *domain.SimpleInputs
	Complex  *domain.ComplexInputs
	TableRef string // demo table the multiplier came from, empty if manual
}

// BuildPayload assembles the report record for a finished calculation.
func BuildPayload(in PayloadInput, res *domain.CalculationResult) *ReportPayload {
	p := &ReportPayload{
		SchemaVersion: SchemaVersion,
		ReportID:      uuid.NewString(),
		GeneratedAt:   time.Now().Format(dateLayout),
		Method:        string(in.Method),
		Basis:         Basis,
		Disclaimer:    Disclaimer,

		TaxRate:          money.Percent(in.Tax.Rate),
		TaxFreeAllowance: in.Tax.FreeAllowance.StringFixed(2),

		NetTotal:       res.NetTotal.StringFixed(2),
		TaxablePortion: res.TaxablePortion.StringFixed(2),
		GrossTotal:     res.GrossTotal.StringFixed(2),
		TaxElement:     res.TaxElement.StringFixed(2),
	}

	breakdown := res.Breakdown()
	p.BreakdownPensionCapital = breakdown.PensionCapital.StringFixed(2)
	p.BreakdownLumpSumLoss = breakdown.LumpSumLoss.StringFixed(2)
	p.BreakdownTaxGrossUp = breakdown.TaxGrossUp.StringFixed(2)

	switch in.Method {
	case domain.MethodSimple:
		p.GrossSalary = in.Simple.GrossSalary.StringFixed(2)
		p.ContributionRate = in.Simple.ContributionRate.String()
		p.PeriodYears = in.Simple.PeriodYears.String()
	case domain.MethodComplex:
		p.ClaimantAge = in.Claimant.AgeAtTrial
		p.Gender = in.Claimant.Gender.Display()
		p.RetirementAge = in.Claimant.RetirementAge
		p.YearsToRetirement = res.YearsToRetirement
		p.TableRef = in.TableRef
		p.Multiplier = res.Multiplier.StringFixed(2)
		p.DiscountRate = discountRateLabel
		p.WithdrawalPct = res.WithdrawalPct.String()
		p.OldLumpFuture = in.Complex.OldLumpFuture.StringFixed(2)
		p.NewLumpFuture = in.Complex.NewLumpFuture.StringFixed(2)
		p.NewLumpNow = in.Complex.NewLumpNow.StringFixed(2)

		p.NetAnnualLoss = res.NetAnnualLoss.StringFixed(2)
		p.CapitalValue = res.CapitalValue.StringFixed(2)
		p.DiscountFactor = res.DiscountFactor.StringFixed(4)
		p.PVOldLump = res.PVOldLump.StringFixed(2)
		p.PVNewLump = res.PVNewLump.StringFixed(2)
		p.LumpSumLoss = res.LumpSumLoss.StringFixed(2)
		p.WithdrawalDeduction = res.WithdrawalDeduction.StringFixed(2)
	}

	return p
}
