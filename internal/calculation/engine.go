// Package calculation implements the pension loss arithmetic for both
// methods: the contributions-based simple method and the seven-step defined
// benefit method with accelerated-receipt lump sum discounting, a Polkey
// withdrawal deduction and a marginal-rate tax gross-up.
package calculation

import (
	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"

	"github.com/anmacmillan/pensionloss/internal/domain"
	"github.com/anmacmillan/pensionloss/pkg/money"
)

// ErrConfiscatoryTaxRate is returned when the marginal rate is 100% or more;
// the gross-up would divide by zero. Rejected before any arithmetic runs.
var ErrConfiscatoryTaxRate = eris.New("tax rate must be below 100% for the gross-up")

var (
	one = decimal.NewFromInt(1)

	// Term certain discount rate of -0.25% per annum, per the standard
	// actuarial guidance this tool encodes. The negative rate inflates
	// future sums: a lump receivable later is worth more in present terms.
	termCertainBase = one.Sub(decimal.NewFromFloat(0.0025)) // 0.9975
)

// Engine runs pension loss calculations. It holds no state between calls;
// every result is a pure function of the input snapshot.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with no-op logging.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil value restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// DiscountFactor is the accelerated-receipt factor over a term certain of
// the given number of years: (1 - 0.0025)^(-years). The factor exceeds 1
// for any positive term. Negative terms are not clamped; the factor they
// produce is propagated so inconsistent inputs stay visible to the caller.
func DiscountFactor(yearsToRetire int) decimal.Decimal {
	return termCertainBase.Pow(decimal.NewFromInt(int64(-yearsToRetire)))
}

// Simple values the loss of employer contributions: salary times the
// contribution rate, over the claim period, then grossed up for tax.
func (e *Engine) Simple(in domain.SimpleInputs, tax domain.TaxConfig) (*domain.CalculationResult, error) {
	annualLoss := in.GrossSalary.Mul(money.Fraction(in.ContributionRate))
	netTotal := annualLoss.Mul(in.PeriodYears)

	res := &domain.CalculationResult{
		Method:     domain.MethodSimple,
		AnnualLoss: annualLoss,
		NetTotal:   netTotal,
	}
	if err := e.grossUp(res, tax); err != nil {
		return nil, err
	}

	e.Logger.Debugf("simple method: annual loss %s over %s years -> net %s gross %s",
		annualLoss.StringFixed(2), in.PeriodYears.String(), res.NetTotal.StringFixed(2), res.GrossTotal.StringFixed(2))
	return res, nil
}

// Complex runs the seven-step defined benefit calculation. The multiplier in
// the inputs must already be resolved (table lookup or manual entry); the
// engine performs no lookup of its own. A negative years-to-retirement is
// not rejected here: the discount factor it yields is computed and passed
// through so the operator can see the inconsistency, and callers are
// expected to flag it before presenting the result as valid.
func (e *Engine) Complex(claimant domain.ClaimantProfile, in domain.ComplexInputs, tax domain.TaxConfig) (*domain.CalculationResult, error) {
	// Steps 1-3: the net annual loss is the old projected pension less
	// everything the claimant still gets. May be negative; not clamped.
	netAnnualLoss := in.OldPension.Sub(in.AccruedPension.Add(in.NewPension))

	years := claimant.YearsToRetirement()
	factor := DiscountFactor(years)

	// Lump sums: future amounts are discounted over the term certain, the
	// portion already received is present value as it stands.
	pvOldLump := in.OldLumpFuture.Mul(factor)
	pvNewLump := in.NewLumpFuture.Mul(factor).Add(in.NewLumpNow)
	lumpSumLoss := pvOldLump.Sub(pvNewLump)

	// Steps 4-5: capitalise the annual loss.
	capitalValue := netAnnualLoss.Mul(in.Multiplier)
	totalRaw := capitalValue.Add(lumpSumLoss)

	// Step 7: Polkey withdrawal deduction.
	withdrawal := totalRaw.Mul(money.Fraction(in.WithdrawalPct))
	netTotal := totalRaw.Sub(withdrawal)

	res := &domain.CalculationResult{
		Method:              domain.MethodComplex,
		NetAnnualLoss:       netAnnualLoss,
		YearsToRetirement:   years,
		DiscountFactor:      factor,
		PVOldLump:           pvOldLump,
		PVNewLump:           pvNewLump,
		LumpSumLoss:         lumpSumLoss,
		CapitalValue:        capitalValue,
		TotalRaw:            totalRaw,
		WithdrawalDeduction: withdrawal,
		WithdrawalPct:       in.WithdrawalPct,
		Multiplier:          in.Multiplier,
		NetTotal:            netTotal,
	}
	if err := e.grossUp(res, tax); err != nil {
		return nil, err
	}

	e.Logger.Debugf("complex method: net annual loss %s x %s -> capital %s, lump loss %s (factor %s over %d years), net %s gross %s",
		netAnnualLoss.StringFixed(2), in.Multiplier.StringFixed(2), capitalValue.StringFixed(2),
		lumpSumLoss.StringFixed(2), factor.StringFixed(4), years,
		res.NetTotal.StringFixed(2), res.GrossTotal.StringFixed(2))
	return res, nil
}

// grossUp inflates the net award so the claimant keeps the intended net sum
// after tax: the slice within the remaining tax-free allowance passes
// through untouched, the rest is divided by (1 - rate).
func (e *Engine) grossUp(res *domain.CalculationResult, tax domain.TaxConfig) error {
	if tax.Rate.GreaterThanOrEqual(one) {
		return eris.Wrapf(ErrConfiscatoryTaxRate, "rate %s", tax.Rate.String())
	}

	taxable := decimal.Max(decimal.Zero, res.NetTotal.Sub(tax.FreeAllowance))
	gross := decimal.Min(res.NetTotal, tax.FreeAllowance).Add(taxable.Div(one.Sub(tax.Rate)))

	res.TaxablePortion = taxable
	res.GrossTotal = gross
	res.TaxElement = gross.Sub(res.NetTotal)
	return nil
}
