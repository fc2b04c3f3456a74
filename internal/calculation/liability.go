package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/sololedger/tax-calculator/internal/domain"
	money "github.com/sololedger/tax-calculator/pkg/decimal"
)

// LiabilityCalculator applies one tax year's ruleset to a net-profit
// figure. It is stateless: every method is a pure function of its
// arguments, so a single calculator may be shared by any number of
// goroutines.
//
// Rounding happens when each component is finalised, using round-half-up
// to pence, so the reported total is always the exact sum of the
// component figures.
type LiabilityCalculator struct{}

// NewLiabilityCalculator creates a new liability calculator
func NewLiabilityCalculator() *LiabilityCalculator {
	return &LiabilityCalculator{}
}

// IncomeTax calculates progressive income tax on self-employment profit.
// The taxable base is profit less the personal allowance; each band
// taxes only the slice of the base that falls within it, and the final
// unbounded band takes everything above the last finite bound.
func (lc *LiabilityCalculator) IncomeTax(profit money.Money, rs domain.Ruleset) money.Money {
	if !profit.IsPositive() {
		return money.Zero()
	}

	taxable := profit.Sub(money.NewMoney(rs.PersonalAllowance))
	if !taxable.IsPositive() {
		return money.Zero()
	}

	// Band bounds are absolute income thresholds; shift them into
	// taxable space by subtracting the allowance.
	tax := money.Zero()
	prev := money.Zero()
	for _, band := range rs.TaxBands {
		var slice money.Money
		if band.Unbounded() {
			slice = taxable.Sub(prev)
		} else {
			bound := money.NewMoney(band.UpperBound.Sub(rs.PersonalAllowance))
			slice = money.Min(taxable, bound).Sub(prev)
			prev = bound
		}
		if slice.IsPositive() {
			tax = tax.Add(slice.ApplyRate(band.Rate))
		}
		if taxable.LessThanOrEqual(prev) {
			break
		}
	}

	return tax.RoundPence()
}

// Class2 calculates National Insurance Class 2, a flat weekly rate
// payable for 52 weeks once profits reach the small profits threshold.
// It is a step function: the amount does not grow with profit.
func (lc *LiabilityCalculator) Class2(profit money.Money, rs domain.Ruleset) money.Money {
	if !profit.IsPositive() {
		return money.Zero()
	}
	if profit.LessThan(money.NewMoney(rs.Class2Threshold)) {
		return money.Zero()
	}
	return money.NewMoney(rs.Class2WeeklyRate).Annualise().RoundPence()
}

// Class4 calculates National Insurance Class 4 on profits: the main rate
// between the lower and upper thresholds, plus the higher rate on
// anything above the upper threshold.
func (lc *LiabilityCalculator) Class4(profit money.Money, rs domain.Ruleset) money.Money {
	if !profit.IsPositive() {
		return money.Zero()
	}

	lower := money.NewMoney(rs.Class4LowerThreshold)
	upper := money.NewMoney(rs.Class4UpperThreshold)
	if profit.LessThanOrEqual(lower) {
		return money.Zero()
	}

	ni := money.Min(profit, upper).Sub(lower).ApplyRate(rs.Class4MainRate)
	if profit.GreaterThan(upper) {
		ni = ni.Add(profit.Sub(upper).ApplyRate(rs.Class4HigherRate))
	}

	return ni.RoundPence()
}

// Breakdown computes all three components for a profit under a ruleset.
// Negative or zero profit yields zero everywhere; it is never an error.
func (lc *LiabilityCalculator) Breakdown(profit decimal.Decimal, rs domain.Ruleset) domain.LiabilityBreakdown {
	p := money.NewMoney(profit)

	incomeTax := lc.IncomeTax(p, rs)
	class2 := lc.Class2(p, rs)
	class4 := lc.Class4(p, rs)
	total := incomeTax.Add(class2).Add(class4)

	return domain.LiabilityBreakdown{
		IncomeTax:      incomeTax.Decimal,
		Class2:         class2.Decimal,
		Class4:         class4.Decimal,
		Total:          total.Decimal,
		TaxYear:        rs.TaxYear,
		RulesetVersion: rs.Version,
	}
}
