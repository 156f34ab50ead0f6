package domain

import "github.com/shopspring/decimal"

// CalculationResult carries every intermediate and final figure produced by a
// single engine run. Fields not meaningful for the chosen method are zero.
// Results are value snapshots; nothing mutates them after computation.
type CalculationResult struct {
	Method Method `json:"method"`

	// Shared figures.
	NetTotal       decimal.Decimal `json:"net_total"`
	TaxablePortion decimal.Decimal `json:"taxable_portion"`
	GrossTotal     decimal.Decimal `json:"gross_total"`
	TaxElement     decimal.Decimal `json:"tax_element"`

	// Simple method.
	AnnualLoss decimal.Decimal `json:"annual_loss,omitempty"`

	// Complex method.
	NetAnnualLoss       decimal.Decimal `json:"net_annual_loss,omitempty"`
	YearsToRetirement   int             `json:"years_to_retirement,omitempty"`
	DiscountFactor      decimal.Decimal `json:"discount_factor,omitempty"`
	PVOldLump           decimal.Decimal `json:"pv_old_lump,omitempty"`
	PVNewLump           decimal.Decimal `json:"pv_new_lump,omitempty"`
	LumpSumLoss         decimal.Decimal `json:"lump_sum_loss,omitempty"`
	CapitalValue        decimal.Decimal `json:"capital_value,omitempty"`
	TotalRaw            decimal.Decimal `json:"total_raw,omitempty"`
	WithdrawalDeduction decimal.Decimal `json:"withdrawal_deduction,omitempty"`
	WithdrawalPct       decimal.Decimal `json:"withdrawal_pct,omitempty"`
	Multiplier          decimal.Decimal `json:"multiplier,omitempty"`
}

// AwardBreakdown splits the grossed-up award into the three components the
// presentation layer charts. The components sum to the gross total.
type AwardBreakdown struct {
	PensionCapital decimal.Decimal `json:"pension_capital"` // capital value net of withdrawal
	LumpSumLoss    decimal.Decimal `json:"lump_sum_loss"`   // lump sum loss net of withdrawal
	TaxGrossUp     decimal.Decimal `json:"tax_gross_up"`
}

// Total is the sum of the three components, equal to the gross award.
func (b AwardBreakdown) Total() decimal.Decimal {
	return b.PensionCapital.Add(b.LumpSumLoss).Add(b.TaxGrossUp)
}

// Breakdown derives the chartable component split from a result. For the
// simple method the whole net award counts as pension capital.
func (r *CalculationResult) Breakdown() AwardBreakdown {
	if r.Method == MethodSimple {
		return AwardBreakdown{
			PensionCapital: r.NetTotal,
			LumpSumLoss:    decimal.Zero,
			TaxGrossUp:     r.TaxElement,
		}
	}
	retained := decimal.NewFromInt(1).Sub(r.WithdrawalPct.Div(decimal.NewFromInt(100)))
	return AwardBreakdown{
		PensionCapital: r.CapitalValue.Mul(retained),
		LumpSumLoss:    r.LumpSumLoss.Mul(retained),
		TaxGrossUp:     r.TaxElement,
	}
}
