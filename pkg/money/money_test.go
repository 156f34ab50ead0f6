package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGBP(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "£0.00"},
		{"small", "42.5", "£42.50"},
		{"thousands", "1234.56", "£1,234.56"},
		{"large award", "110000", "£110,000.00"},
		{"millions", "1234567.89", "£1,234,567.89"},
		{"negative", "-250", "-£250.00"},
		{"negative thousands", "-31568.07", "-£31,568.07"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, GBP(d))
		})
	}
}

func TestGrouped(t *testing.T) {
	assert.Equal(t, "999.00", Grouped(decimal.NewFromInt(999)))
	assert.Equal(t, "1,000.00", Grouped(decimal.NewFromInt(1000)))
	assert.Equal(t, "-62,352.00", Grouped(decimal.NewFromInt(-62352)))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "40%", Percent(decimal.NewFromFloat(0.40)))
	assert.Equal(t, "45%", Percent(decimal.NewFromFloat(0.45)))
	assert.Equal(t, "0%", Percent(decimal.Zero))
}

func TestFraction(t *testing.T) {
	assert.True(t, Fraction(decimal.NewFromInt(5)).Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, Fraction(decimal.NewFromInt(100)).Equal(decimal.NewFromInt(1)))
}
