package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sololedger/tax-calculator/internal/rulesets"
)

var june2024 = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

// TestRecommendSetAside tests the heuristic against worked figures from
// the 2024-25 ruleset.
func TestRecommendSetAside(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name              string
		profit            string
		expectedPercent   string
		expectedRate      string
		expectedRationale string
		description       string
	}{
		{
			name:              "Below allowance hits floor",
			profit:            "10000",
			expectedPercent:   "15",
			expectedRate:      "1.79",
			expectedRationale: RationaleBelowAllowance,
			description:       "Only Class 2 owed; buffered rate clamps up to the floor",
		},
		{
			name:              "Basic rate profit",
			profit:            "30000",
			expectedPercent:   "25",
			expectedRate:      "17.45",
			expectedRationale: RationaleBasicRate,
			description:       "17.45% effective + 5 buffer, ceiled to 25",
		},
		{
			name:              "Higher rate profit",
			profit:            "60000",
			expectedPercent:   "35",
			expectedRate:      "25.33",
			expectedRationale: RationaleHigherRate,
			description:       "25.33% effective + 5 buffer, ceiled to 35",
		},
		{
			name:              "Very high profit hits ceiling",
			profit:            "2000000",
			expectedPercent:   "50",
			expectedRate:      "46.19",
			expectedRationale: RationaleAdditionalRate,
			description:       "Buffered rate would exceed 50, clamped to the ceiling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := engine.RecommendSetAside(decimal.RequireFromString(tt.profit), june2024)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPercent, rec.Percentage.String(), tt.description)
			assert.Equal(t, tt.expectedRate, rec.EffectiveRate.StringFixed(2), tt.description)
			assert.Equal(t, tt.expectedRationale, rec.Rationale, tt.description)
		})
	}
}

// TestRecommendNonPositiveProfit returns the fixed default without
// touching the liability calculator. Using a date in an unregistered tax
// year proves no lookup happens on this path.
func TestRecommendNonPositiveProfit(t *testing.T) {
	engine := NewEngine()
	farFuture := time.Date(2060, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, profit := range []string{"0", "-1", "-25000"} {
		rec, err := engine.RecommendSetAside(decimal.RequireFromString(profit), farFuture)
		require.NoError(t, err)
		assert.Equal(t, "20", rec.Percentage.String())
		assert.True(t, rec.EffectiveRate.IsZero())
		assert.Equal(t, RationaleNoProfit, rec.Rationale)
	}
}

func TestRecommendUnknownYearFails(t *testing.T) {
	engine := NewEngine()

	_, err := engine.RecommendSetAside(decimal.NewFromInt(30000),
		time.Date(2060, 6, 1, 0, 0, 0, 0, time.UTC))
	var notFound *rulesets.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

// TestRecommendAlwaysMultipleOfFiveInRange sweeps profits and checks the
// output contract: a whole multiple of 5 within [15, 50].
func TestRecommendAlwaysMultipleOfFiveInRange(t *testing.T) {
	engine := NewEngine()
	five := decimal.NewFromInt(5)

	for profit := int64(1); profit <= 3000000; profit += 37501 {
		rec, err := engine.RecommendSetAside(decimal.NewFromInt(profit), june2024)
		require.NoError(t, err)
		assert.True(t, rec.Percentage.Mod(five).IsZero(),
			"profit %d: %s is not a multiple of 5", profit, rec.Percentage)
		assert.True(t, rec.Percentage.GreaterThanOrEqual(decimal.NewFromInt(15)),
			"profit %d: %s below floor", profit, rec.Percentage)
		assert.True(t, rec.Percentage.LessThanOrEqual(decimal.NewFromInt(50)),
			"profit %d: %s above ceiling", profit, rec.Percentage)
	}
}

// TestRationaleBandsExhaustive: every non-negative profit lands in
// exactly one band, including values above the highest explicit bound.
func TestRationaleBandsExhaustive(t *testing.T) {
	rs, err := rulesets.New().ForYear("2024-25")
	require.NoError(t, err)
	bands := rationaleBands(rs)

	tests := []struct {
		profit   string
		expected string
	}{
		{profit: "0", expected: RationaleBelowAllowance},
		{profit: "12569.99", expected: RationaleBelowAllowance},
		{profit: "12570", expected: RationaleBasicRate},
		{profit: "50269.99", expected: RationaleBasicRate},
		{profit: "50270", expected: RationaleHigherRate},
		{profit: "125139.99", expected: RationaleHigherRate},
		{profit: "125140", expected: RationaleAdditionalRate},
		{profit: "99999999", expected: RationaleAdditionalRate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, selectRationale(bands, decimal.RequireFromString(tt.profit)),
			"profit %s", tt.profit)
	}

	// Ordering invariant: lower bounds strictly increase.
	for i := 1; i < len(bands); i++ {
		assert.True(t, bands[i].lower.GreaterThan(bands[i-1].lower),
			"band %d lower bound must exceed band %d", i, i-1)
	}
}
