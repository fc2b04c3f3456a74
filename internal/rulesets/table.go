package rulesets

import (
	"github.com/shopspring/decimal"

	"github.com/sololedger/tax-calculator/internal/domain"
)

// builtin returns the authored rule table. All monetary values are GBP.
// Adding a new tax year means appending a new entry here; never edit an
// existing entry once it has shipped.
func builtin() []domain.Ruleset {
	return []domain.Ruleset{
		{
			TaxYear:           "2023-24",
			Version:           "2023-24-v1",
			PersonalAllowance: gbp("12570"),
			TaxBands: []domain.TaxBand{
				{Name: "basic", UpperBound: gbp("50270"), Rate: rate("0.20")},
				{Name: "higher", UpperBound: gbp("125140"), Rate: rate("0.40")},
				{Name: "additional", Rate: rate("0.45")},
			},
			Class2Threshold:          gbp("6725"),
			Class2WeeklyRate:         gbp("3.45"),
			Class4LowerThreshold:     gbp("12570"),
			Class4UpperThreshold:     gbp("50270"),
			Class4MainRate:           rate("0.09"),
			Class4HigherRate:         rate("0.02"),
			VATThreshold:             gbp("85000"),
			VATRegistrationThreshold: gbp("90000"),
		},
		{
			TaxYear:           "2024-25",
			Version:           "2024-25-v1",
			PersonalAllowance: gbp("12570"),
			TaxBands: []domain.TaxBand{
				{Name: "basic", UpperBound: gbp("50270"), Rate: rate("0.20")},
				{Name: "higher", UpperBound: gbp("125140"), Rate: rate("0.40")},
				{Name: "additional", Rate: rate("0.45")},
			},
			Class2Threshold:          gbp("6725"),
			Class2WeeklyRate:         gbp("3.45"),
			Class4LowerThreshold:     gbp("12570"),
			Class4UpperThreshold:     gbp("50270"),
			Class4MainRate:           rate("0.09"),
			Class4HigherRate:         rate("0.02"),
			VATThreshold:             gbp("85000"),
			VATRegistrationThreshold: gbp("90000"),
		},
		{
			// Carried forward from 2024-25; update when HMRC announces
			// the final figures.
			TaxYear:           "2025-26",
			Version:           "2025-26-v1",
			PersonalAllowance: gbp("12570"),
			TaxBands: []domain.TaxBand{
				{Name: "basic", UpperBound: gbp("50270"), Rate: rate("0.20")},
				{Name: "higher", UpperBound: gbp("125140"), Rate: rate("0.40")},
				{Name: "additional", Rate: rate("0.45")},
			},
			Class2Threshold:          gbp("6725"),
			Class2WeeklyRate:         gbp("3.45"),
			Class4LowerThreshold:     gbp("12570"),
			Class4UpperThreshold:     gbp("50270"),
			Class4MainRate:           rate("0.09"),
			Class4HigherRate:         rate("0.02"),
			VATThreshold:             gbp("85000"),
			VATRegistrationThreshold: gbp("90000"),
		},
	}
}

// gbp and rate parse authored literals exactly; float literals must never
// reach a monetary value.
func gbp(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func rate(s string) decimal.Decimal { return decimal.RequireFromString(s) }
