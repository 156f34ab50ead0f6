package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// yaml.v3 cannot decode a scalar straight into a decimal.Decimal, so each
// input struct round-trips through a string-field alias and
// decimal.NewFromString. Empty fields decode as zero.

func decFromYAML(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

type simpleInputsAlias struct {
	GrossSalary      string `yaml:"gross_salary"`
	ContributionRate string `yaml:"contribution_rate"`
	PeriodYears      string `yaml:"period_years"`
}

func (in *SimpleInputs) UnmarshalYAML(value *yaml.Node) error {
	var aux simpleInputsAlias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	var err error
	if in.GrossSalary, err = decFromYAML(aux.GrossSalary); err != nil {
		return err
	}
	if in.ContributionRate, err = decFromYAML(aux.ContributionRate); err != nil {
		return err
	}
	in.PeriodYears, err = decFromYAML(aux.PeriodYears)
	return err
}

func (in SimpleInputs) MarshalYAML() (interface{}, error) {
	return simpleInputsAlias{
		GrossSalary:      in.GrossSalary.String(),
		ContributionRate: in.ContributionRate.String(),
		PeriodYears:      in.PeriodYears.String(),
	}, nil
}

type complexInputsAlias struct {
	OldPension     string `yaml:"old_pension"`
	AccruedPension string `yaml:"accrued_pension"`
	NewPension     string `yaml:"new_pension"`
	Multiplier     string `yaml:"multiplier,omitempty"`
	WithdrawalPct  string `yaml:"withdrawal_pct"`
	OldLumpFuture  string `yaml:"old_lump_future"`
	NewLumpFuture  string `yaml:"new_lump_future"`
	NewLumpNow     string `yaml:"new_lump_now"`
}

func (in *ComplexInputs) UnmarshalYAML(value *yaml.Node) error {
	var aux complexInputsAlias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	fields := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&in.OldPension, aux.OldPension},
		{&in.AccruedPension, aux.AccruedPension},
		{&in.NewPension, aux.NewPension},
		{&in.Multiplier, aux.Multiplier},
		{&in.WithdrawalPct, aux.WithdrawalPct},
		{&in.OldLumpFuture, aux.OldLumpFuture},
		{&in.NewLumpFuture, aux.NewLumpFuture},
		{&in.NewLumpNow, aux.NewLumpNow},
	}
	for _, f := range fields {
		v, err := decFromYAML(f.src)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func (in ComplexInputs) MarshalYAML() (interface{}, error) {
	aux := complexInputsAlias{
		OldPension:     in.OldPension.String(),
		AccruedPension: in.AccruedPension.String(),
		NewPension:     in.NewPension.String(),
		WithdrawalPct:  in.WithdrawalPct.String(),
		OldLumpFuture:  in.OldLumpFuture.String(),
		NewLumpFuture:  in.NewLumpFuture.String(),
		NewLumpNow:     in.NewLumpNow.String(),
	}
	if !in.Multiplier.IsZero() {
		aux.Multiplier = in.Multiplier.String()
	}
	return aux, nil
}

type taxConfigAlias struct {
	Rate          string `yaml:"rate"`
	FreeAllowance string `yaml:"free_allowance"`
}

func (tc *TaxConfig) UnmarshalYAML(value *yaml.Node) error {
	var aux taxConfigAlias
	if err := value.Decode(&aux); err != nil {
		return err
	}
	var err error
	if tc.Rate, err = decFromYAML(aux.Rate); err != nil {
		return err
	}
	tc.FreeAllowance, err = decFromYAML(aux.FreeAllowance)
	return err
}

func (tc TaxConfig) MarshalYAML() (interface{}, error) {
	return taxConfigAlias{
		Rate:          tc.Rate.String(),
		FreeAllowance: tc.FreeAllowance.String(),
	}, nil
}
