// Package ogden supplies the demo actuarial multiplier tables used to
// capitalise an annual pension loss. The values approximate the 8th edition
// tables at a -0.25% discount rate via linear decay from a base value at age
// 40; they are a stand-in for the published tables, not a reproduction.
package ogden

import (
	"github.com/shopspring/decimal"

	"github.com/anmacmillan/pensionloss/internal/domain"
)

// The demo tables cover this age band only. Lookups outside it signal not
// found so the caller can fall back to a manually entered multiplier.
const (
	MinAge = 40
	MaxAge = 60
)

// decay defines one column: the multiplier at age 40 and the amount it
// falls per year of age.
type decay struct {
	base decimal.Decimal
	step decimal.Decimal
}

func newDecay(base, step string) decay {
	return decay{decimal.RequireFromString(base), decimal.RequireFromString(step)}
}

var (
	maleDecay = map[int]decay{
		60: newDecay("24.50", "0.95"),
		65: newDecay("22.00", "0.60"),
		68: newDecay("19.50", "0.50"),
	}
	femaleDecay = map[int]decay{
		60: newDecay("26.00", "0.90"),
		65: newDecay("23.50", "0.55"),
		68: newDecay("21.00", "0.50"),
	}
)

// Row holds the candidate multipliers for one age at trial, keyed by target
// retirement age.
type Row struct {
	Age         int                     `json:"age"`
	Multipliers map[int]decimal.Decimal `json:"multipliers"`
}

// Table is an ordered, immutable sequence of rows for one gender.
type Table struct {
	Gender domain.Gender `json:"gender"`
	Ref    string        `json:"ref"` // published table this approximates
	Rows   []Row         `json:"rows"`
}

// Generate builds the demo table for a gender. Values that would decay below
// zero are floored at zero.
func Generate(gender domain.Gender) Table {
	params := maleDecay
	ref := "Table 28 (Males)"
	if gender == domain.GenderFemale {
		params = femaleDecay
		ref = "Table 29 (Females)"
	}

	t := Table{Gender: gender, Ref: ref}
	for age := MinAge; age <= MaxAge; age++ {
		row := Row{Age: age, Multipliers: make(map[int]decimal.Decimal, len(domain.RetirementAges))}
		years := decimal.NewFromInt(int64(age - MinAge))
		for _, retAge := range domain.RetirementAges {
			d := params[retAge]
			v := d.base.Sub(d.step.Mul(years))
			if v.IsNegative() {
				v = decimal.Zero
			}
			row.Multipliers[retAge] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Lookup returns the exact-match multiplier for an age and retirement age.
// The second return is false when the age falls outside the table band or
// the retirement age has no column; there is no interpolation between ages.
func (t Table) Lookup(age, retirementAge int) (decimal.Decimal, bool) {
	if age < MinAge || age > MaxAge {
		return decimal.Zero, false
	}
	m, ok := t.Rows[age-MinAge].Multipliers[retirementAge]
	if !ok {
		return decimal.Zero, false
	}
	return m, true
}

// Provider is the lookup capability handed to callers, so the demo tables
// can be swapped for real data without touching the calculation path.
type Provider interface {
	Table(gender domain.Gender) Table
	Lookup(age int, gender domain.Gender, retirementAge int) (decimal.Decimal, bool)
}

// DemoProvider serves the generated demo tables, built once per gender.
type DemoProvider struct {
	tables map[domain.Gender]Table
}

// NewDemoProvider generates both gender tables up front; the provider is
// immutable afterwards and safe for concurrent lookups.
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{tables: map[domain.Gender]Table{
		domain.GenderMale:   Generate(domain.GenderMale),
		domain.GenderFemale: Generate(domain.GenderFemale),
	}}
}

func (p *DemoProvider) Table(gender domain.Gender) Table {
	return p.tables[gender]
}

func (p *DemoProvider) Lookup(age int, gender domain.Gender, retirementAge int) (decimal.Decimal, bool) {
	return p.tables[gender].Lookup(age, retirementAge)
}

// ResolveMultiplier picks the multiplier for a claimant: a manually supplied
// positive value always wins, otherwise the table is consulted. ok is false
// when neither source can supply a value.
func ResolveMultiplier(p Provider, c domain.ClaimantProfile, manual decimal.Decimal) (decimal.Decimal, bool) {
	if manual.IsPositive() {
		return manual, true
	}
	return p.Lookup(c.AgeAtTrial, c.Gender, c.RetirementAge)
}
