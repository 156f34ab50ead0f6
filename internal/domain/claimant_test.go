package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseGender(t *testing.T) {
	g, err := ParseGender("male")
	assert.NoError(t, err)
	assert.Equal(t, GenderMale, g)
	assert.Equal(t, "Male", g.Display())

	g, err = ParseGender("female")
	assert.NoError(t, err)
	assert.Equal(t, GenderFemale, g)

	_, err = ParseGender("other")
	assert.Error(t, err)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("complex")
	assert.NoError(t, err)
	assert.Equal(t, MethodComplex, m)

	_, err = ParseMethod("hybrid")
	assert.Error(t, err)
}

func TestValidRetirementAge(t *testing.T) {
	for _, age := range []int{60, 65, 68} {
		assert.True(t, ValidRetirementAge(age), "age %d", age)
	}
	for _, age := range []int{55, 59, 61, 66, 67, 70} {
		assert.False(t, ValidRetirementAge(age), "age %d", age)
	}
}

func TestYearsToRetirement(t *testing.T) {
	c := ClaimantProfile{AgeAtTrial: 50, Gender: GenderMale, RetirementAge: 65}
	assert.Equal(t, 15, c.YearsToRetirement())

	// Inconsistent inputs are reported as given, not clamped.
	c = ClaimantProfile{AgeAtTrial: 62, RetirementAge: 60}
	assert.Equal(t, -2, c.YearsToRetirement())
}

func TestValidTaxRate(t *testing.T) {
	assert.True(t, ValidTaxRate(decimal.NewFromFloat(0.20)))
	assert.True(t, ValidTaxRate(decimal.NewFromFloat(0.40)))
	assert.True(t, ValidTaxRate(decimal.NewFromFloat(0.45)))
	assert.False(t, ValidTaxRate(decimal.NewFromFloat(0.30)))
	assert.False(t, ValidTaxRate(decimal.NewFromInt(1)))
}

func TestBreakdownTotalEqualsGross(t *testing.T) {
	res := &CalculationResult{
		Method:        MethodComplex,
		CapitalValue:  decimal.NewFromInt(110000),
		LumpSumLoss:   decimal.NewFromInt(31568),
		WithdrawalPct: decimal.NewFromInt(5),
		NetTotal:      decimal.NewFromFloat(134489.60),
		TaxElement:    decimal.NewFromFloat(89659.73),
		GrossTotal:    decimal.NewFromFloat(224149.33),
	}
	b := res.Breakdown()
	assert.True(t, b.Total().Sub(res.GrossTotal).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"breakdown total %s vs gross %s", b.Total(), res.GrossTotal)
}

func TestBreakdownSimple(t *testing.T) {
	res := &CalculationResult{
		Method:     MethodSimple,
		NetTotal:   decimal.NewFromInt(1500),
		TaxElement: decimal.NewFromInt(1000),
		GrossTotal: decimal.NewFromInt(2500),
	}
	b := res.Breakdown()
	assert.True(t, b.PensionCapital.Equal(decimal.NewFromInt(1500)))
	assert.True(t, b.LumpSumLoss.IsZero())
	assert.True(t, b.Total().Equal(decimal.NewFromInt(2500)))
}
