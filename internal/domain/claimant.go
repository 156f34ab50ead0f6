// Package domain holds the core types for pension loss claims: the claimant
// profile, the per-method inputs, the tax position and the calculation result.
package domain

import "fmt"

// Gender selects which demo actuarial table applies to a claimant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender normalises a user-supplied gender string.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s), nil
	}
	return "", fmt.Errorf("unknown gender %q (expected %q or %q)", s, GenderMale, GenderFemale)
}

// Display returns the capitalised form used in reports.
func (g Gender) Display() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	}
	return string(g)
}

// Method selects the calculation basis for a claim.
type Method string

const (
	// MethodSimple values lost employer contributions (defined contribution schemes).
	MethodSimple Method = "simple"
	// MethodComplex runs the seven-step defined benefit calculation.
	MethodComplex Method = "complex"
)

// ParseMethod normalises a user-supplied method string.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodSimple, MethodComplex:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown method %q (expected %q or %q)", s, MethodSimple, MethodComplex)
}

// RetirementAges are the target retirement ages the demo tables carry columns for.
var RetirementAges = []int{60, 65, 68}

// ValidRetirementAge reports whether age is one of the supported targets.
func ValidRetirementAge(age int) bool {
	for _, a := range RetirementAges {
		if a == age {
			return true
		}
	}
	return false
}

// ClaimantProfile describes the claimant as at the date of trial.
type ClaimantProfile struct {
	AgeAtTrial    int    `yaml:"age_at_trial" json:"age_at_trial"`
	Gender        Gender `yaml:"gender" json:"gender"`
	RetirementAge int    `yaml:"retirement_age" json:"retirement_age"`
}

// YearsToRetirement is the term certain between trial and target retirement.
// A negative value indicates inconsistent inputs; it is reported as given so
// the discrepancy stays visible to the operator rather than being clamped.
func (c ClaimantProfile) YearsToRetirement() int {
	return c.RetirementAge - c.AgeAtTrial
}
