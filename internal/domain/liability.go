package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiabilityBreakdown itemises the tax owed on one net-profit figure.
// Each component is rounded to pence when it is finalised, so Total is
// always the exact sum of the components as reported. The breakdown
// always names the tax year and ruleset version that produced it: the
// same profit computed under a different year's rules is a different,
// non-interchangeable liability.
type LiabilityBreakdown struct {
	IncomeTax      decimal.Decimal `yaml:"income_tax" json:"income_tax"`
	Class2         decimal.Decimal `yaml:"ni_class2" json:"ni_class2"`
	Class4         decimal.Decimal `yaml:"ni_class4" json:"ni_class4"`
	Total          decimal.Decimal `yaml:"total_tax" json:"total_tax"`
	TaxYear        string          `yaml:"tax_year" json:"tax_year"`
	RulesetVersion string          `yaml:"ruleset_version" json:"ruleset_version"`
}

// TaxYearSummary aggregates a profile's transactions for one tax year
// and carries the resulting liability figures.
type TaxYearSummary struct {
	TaxYear       string          `yaml:"tax_year" json:"tax_year"`
	TaxYearStart  time.Time       `yaml:"tax_year_start" json:"tax_year_start"`
	TaxYearEnd    time.Time       `yaml:"tax_year_end" json:"tax_year_end"`
	TotalIncome   decimal.Decimal `yaml:"total_income" json:"total_income"`
	TotalExpenses decimal.Decimal `yaml:"total_expenses" json:"total_expenses"`
	NetProfit     decimal.Decimal `yaml:"net_profit" json:"net_profit"`

	Breakdown LiabilityBreakdown `yaml:"breakdown" json:"breakdown"`

	// SetAside is the amount of the year's income to put by at the
	// profile's configured percentage.
	SetAside decimal.Decimal `yaml:"set_aside" json:"set_aside"`

	// RegistrationDeadline is zero when the profile has no trading
	// start date.
	RegistrationDeadline time.Time `yaml:"registration_deadline,omitempty" json:"registration_deadline,omitempty"`

	// VATThresholdProximity is total income as a percentage of the VAT
	// threshold for the year.
	VATThresholdProximity decimal.Decimal `yaml:"vat_threshold_proximity" json:"vat_threshold_proximity"`
}

// AssessmentPeriodSummary aggregates a profile's transactions inside one
// UC assessment period.
type AssessmentPeriodSummary struct {
	PeriodStart   time.Time       `yaml:"period_start" json:"period_start"`
	PeriodEnd     time.Time       `yaml:"period_end" json:"period_end"`
	TotalIncome   decimal.Decimal `yaml:"total_income" json:"total_income"`
	TotalExpenses decimal.Decimal `yaml:"total_expenses" json:"total_expenses"`
	NetProfit     decimal.Decimal `yaml:"net_profit" json:"net_profit"`
}

// LiabilitySnapshot is a point-in-time record of a tax-year calculation,
// intended for persistence by the caller. It embeds the full ruleset
// used, not just its version label, so a stored snapshot stays
// reconstructible even if the live registry later gains or loses years.
type LiabilitySnapshot struct {
	TaxYear       string          `yaml:"tax_year" json:"tax_year"`
	TaxYearStart  time.Time       `yaml:"tax_year_start" json:"tax_year_start"`
	TaxYearEnd    time.Time       `yaml:"tax_year_end" json:"tax_year_end"`
	TotalIncome   decimal.Decimal `yaml:"total_income" json:"total_income"`
	TotalExpenses decimal.Decimal `yaml:"total_expenses" json:"total_expenses"`
	NetProfit     decimal.Decimal `yaml:"net_profit" json:"net_profit"`

	Breakdown LiabilityBreakdown `yaml:"breakdown" json:"breakdown"`
	Ruleset   Ruleset            `yaml:"ruleset" json:"ruleset"`

	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
}

// Recommendation is a suggested tax set-aside percentage derived from a
// projected annual profit. Percentage is always a whole multiple of five.
type Recommendation struct {
	Percentage    decimal.Decimal `yaml:"percentage" json:"percentage"`
	EffectiveRate decimal.Decimal `yaml:"effective_rate" json:"effective_rate"`
	Rationale     string          `yaml:"rationale" json:"rationale"`
}
