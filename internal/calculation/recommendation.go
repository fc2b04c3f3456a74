package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sololedger/tax-calculator/internal/domain"
)

// Set-aside recommendation policy: the effective liability rate plus a
// safety buffer, rounded up to a multiple of five and clamped to a
// sensible range.
var (
	defaultSetAsidePercent = decimal.NewFromInt(20)
	recommendBufferPoints  = decimal.NewFromInt(5)
	recommendStep          = decimal.NewFromInt(5)
	recommendFloor         = decimal.NewFromInt(15)
	recommendCeiling       = decimal.NewFromInt(50)
)

// Rationale tags returned with a recommendation. Bands are mutually
// exclusive and exhaustive over non-negative profit.
const (
	RationaleNoProfit       = "no-profit"
	RationaleBelowAllowance = "below-personal-allowance"
	RationaleBasicRate      = "basic-rate"
	RationaleHigherRate     = "higher-rate"
	RationaleAdditionalRate = "additional-rate"
)

// rationaleBand pairs a lower profit bound with its tag. Bands are kept
// as an ordered table rather than a comparison chain so the ordering and
// exhaustiveness can be tested directly: the last band whose lower bound
// does not exceed the profit wins, and the first bound is zero so every
// non-negative profit matches.
type rationaleBand struct {
	lower decimal.Decimal
	tag   string
}

func rationaleBands(rs domain.Ruleset) []rationaleBand {
	bands := []rationaleBand{{lower: decimal.Zero, tag: RationaleBelowAllowance}}
	lower := rs.PersonalAllowance
	for _, tb := range rs.TaxBands {
		var tag string
		switch tb.Name {
		case "basic":
			tag = RationaleBasicRate
		case "higher":
			tag = RationaleHigherRate
		default:
			tag = RationaleAdditionalRate
		}
		bands = append(bands, rationaleBand{lower: lower, tag: tag})
		lower = tb.UpperBound
	}
	return bands
}

func selectRationale(bands []rationaleBand, profit decimal.Decimal) string {
	tag := bands[0].tag
	for _, band := range bands {
		if profit.GreaterThanOrEqual(band.lower) {
			tag = band.tag
		}
	}
	return tag
}

// RecommendSetAside suggests a tax set-aside percentage for a projected
// annual profit. A non-positive profit returns the fixed default without
// touching the liability calculator; otherwise the suggestion is the
// effective liability rate plus a five-point buffer, rounded up to the
// next multiple of five and clamped to [15, 50].
func (e *Engine) RecommendSetAside(projectedProfit decimal.Decimal, date time.Time) (domain.Recommendation, error) {
	if !projectedProfit.IsPositive() {
		return domain.Recommendation{
			Percentage:    defaultSetAsidePercent,
			EffectiveRate: decimal.Zero,
			Rationale:     RationaleNoProfit,
		}, nil
	}

	rs, err := e.Rules.ForDate(date)
	if err != nil {
		return domain.Recommendation{}, err
	}

	breakdown := e.Liability.Breakdown(projectedProfit, rs)
	effectiveRate := breakdown.Total.
		Div(projectedProfit).
		Mul(decimal.NewFromInt(100))

	buffered := effectiveRate.Add(recommendBufferPoints)
	suggested := buffered.Div(recommendStep).Ceil().Mul(recommendStep)
	if suggested.LessThan(recommendFloor) {
		suggested = recommendFloor
	}
	if suggested.GreaterThan(recommendCeiling) {
		suggested = recommendCeiling
	}

	return domain.Recommendation{
		Percentage:    suggested,
		EffectiveRate: effectiveRate.Round(2),
		Rationale:     selectRationale(rationaleBands(rs), projectedProfit),
	}, nil
}
