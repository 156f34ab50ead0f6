package output

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/anmacmillan/pensionloss/pkg/money"
)

// ConsoleFormatter renders the report as plain text with the same section
// structure as the exported document.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

// gbp re-reads a payload amount string for display with symbol and grouping.
func gbp(amount string) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}
	return money.GBP(d)
}

func (c ConsoleFormatter) Format(p *ReportPayload) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "PENSION LOSS CALCULATION")
	fmt.Fprintln(&buf, "========================")
	fmt.Fprintf(&buf, "Date: %s\n", p.GeneratedAt)
	fmt.Fprintf(&buf, "Based on: %s\n", p.Basis)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "1. INPUTS & ASSUMPTIONS")
	fmt.Fprintln(&buf, "-----------------------")
	if p.Method == "complex" {
		fmt.Fprintf(&buf, "Claimant Age:            %d\n", p.ClaimantAge)
		fmt.Fprintf(&buf, "Gender:                  %s\n", p.Gender)
		fmt.Fprintf(&buf, "Target Retirement Age:   %d\n", p.RetirementAge)
		fmt.Fprintf(&buf, "Years to Retirement:     %d years\n", p.YearsToRetirement)
		if p.TableRef != "" {
			fmt.Fprintf(&buf, "Multiplier Source:       %s\n", p.TableRef)
		}
		fmt.Fprintf(&buf, "Ogden Multiplier:        %s\n", p.Multiplier)
		fmt.Fprintf(&buf, "Discount Rate (Lump Sum): %s\n", p.DiscountRate)
		fmt.Fprintf(&buf, "Withdrawal (Polkey):     %s%%\n", p.WithdrawalPct)
	} else {
		fmt.Fprintf(&buf, "Salary:                  %s\n", gbp(p.GrossSalary))
		fmt.Fprintf(&buf, "Employer Contribution:   %s%%\n", p.ContributionRate)
		fmt.Fprintf(&buf, "Period:                  %s years\n", p.PeriodYears)
	}
	fmt.Fprintf(&buf, "Tax Rate:                %s\n", p.TaxRate)
	fmt.Fprintf(&buf, "Tax-Free Allowance:      %s\n", gbp(p.TaxFreeAllowance))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "2. CALCULATION DETAIL")
	fmt.Fprintln(&buf, "---------------------")
	if p.Method == "complex" {
		fmt.Fprintf(&buf, "Net Annual Loss:         %s\n", gbp(p.NetAnnualLoss))
		fmt.Fprintf(&buf, "Capital Value (Annual):  %s\n", gbp(p.CapitalValue))
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Lump Sum Analysis (Accelerated Receipt)")
		fmt.Fprintf(&buf, "Old Job Lump Sum (Future):   %s\n", gbp(p.OldLumpFuture))
		fmt.Fprintf(&buf, "New Job Lump Sum (Future):   %s\n", gbp(p.NewLumpFuture))
		fmt.Fprintf(&buf, "Lump Sum Received Early:     %s\n", gbp(p.NewLumpNow))
		fmt.Fprintf(&buf, "Discount Factor (Term Certain): %s\n", p.DiscountFactor)
		fmt.Fprintf(&buf, "PV Old Lump Sum:             %s\n", gbp(p.PVOldLump))
		fmt.Fprintf(&buf, "PV New Lump Sum:             %s\n", gbp(p.PVNewLump))
		fmt.Fprintf(&buf, "Net Lump Sum Loss (PV):      %s\n", gbp(p.LumpSumLoss))
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Final Totals")
		fmt.Fprintf(&buf, "Polkey Deduction:        -%s\n", gbp(p.WithdrawalDeduction))
		fmt.Fprintf(&buf, "Total Net Loss:          %s\n", gbp(p.NetTotal))
	} else {
		fmt.Fprintf(&buf, "Total Net Loss:          %s\n", gbp(p.NetTotal))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "3. GROSSED-UP AWARD")
	fmt.Fprintln(&buf, "-------------------")
	fmt.Fprintf(&buf, "Taxable Portion:         %s\n", gbp(p.TaxablePortion))
	fmt.Fprintf(&buf, "Tax Element:             %s\n", gbp(p.TaxElement))
	fmt.Fprintf(&buf, "Total Award Payable:     %s\n", gbp(p.GrossTotal))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, p.Disclaimer)

	return buf.Bytes(), nil
}
