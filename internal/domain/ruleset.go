package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxBand is one progressive income-tax band. UpperBound is the absolute
// income threshold at which the band ends; a zero UpperBound marks the
// final, unbounded band. Bounds within a ruleset strictly increase.
type TaxBand struct {
	Name       string          `yaml:"name" json:"name"`
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upper_bound"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether this is the final band with no upper limit.
func (b TaxBand) Unbounded() bool {
	return b.UpperBound.IsZero()
}

// Ruleset holds every rate and threshold governing liability calculation
// for one UK tax year. Rulesets are authored data: once registered (and
// in particular once referenced by a persisted snapshot) an entry is
// never edited in place, only superseded by a new entry for a later year.
type Ruleset struct {
	TaxYear string `yaml:"tax_year" json:"tax_year"`
	Version string `yaml:"version" json:"version"`

	// Income tax
	PersonalAllowance decimal.Decimal `yaml:"personal_allowance" json:"personal_allowance"`
	TaxBands          []TaxBand       `yaml:"tax_bands" json:"tax_bands"`

	// National Insurance Class 2: flat weekly rate once profits pass the
	// small profits threshold.
	Class2Threshold  decimal.Decimal `yaml:"class2_threshold" json:"class2_threshold"`
	Class2WeeklyRate decimal.Decimal `yaml:"class2_weekly_rate" json:"class2_weekly_rate"`

	// National Insurance Class 4: profit-based, two tiers.
	Class4LowerThreshold decimal.Decimal `yaml:"class4_lower_threshold" json:"class4_lower_threshold"`
	Class4UpperThreshold decimal.Decimal `yaml:"class4_upper_threshold" json:"class4_upper_threshold"`
	Class4MainRate       decimal.Decimal `yaml:"class4_main_rate" json:"class4_main_rate"`
	Class4HigherRate     decimal.Decimal `yaml:"class4_higher_rate" json:"class4_higher_rate"`

	// VAT registration monitoring
	VATThreshold             decimal.Decimal `yaml:"vat_threshold" json:"vat_threshold"`
	VATRegistrationThreshold decimal.Decimal `yaml:"vat_registration_threshold" json:"vat_registration_threshold"`
}

// Clone returns a deep copy. Snapshots embed the clone so that later
// registry contents can never retroactively alter a stored calculation.
func (r Ruleset) Clone() Ruleset {
	out := r
	out.TaxBands = append([]TaxBand(nil), r.TaxBands...)
	return out
}

// Validate checks the structural invariants of a ruleset.
func (r Ruleset) Validate() error {
	if r.TaxYear == "" {
		return fmt.Errorf("tax year is required")
	}
	if r.Version == "" {
		return fmt.Errorf("version is required")
	}
	if r.PersonalAllowance.IsNegative() {
		return fmt.Errorf("personal allowance cannot be negative")
	}
	if len(r.TaxBands) == 0 {
		return fmt.Errorf("at least one tax band is required")
	}
	prev := decimal.Zero
	for i, band := range r.TaxBands {
		if err := validateRate(band.Rate); err != nil {
			return fmt.Errorf("tax band %d: %w", i, err)
		}
		if band.Unbounded() {
			if i != len(r.TaxBands)-1 {
				return fmt.Errorf("tax band %d: only the final band may be unbounded", i)
			}
			continue
		}
		if i == len(r.TaxBands)-1 {
			return fmt.Errorf("final tax band must be unbounded")
		}
		if band.UpperBound.LessThanOrEqual(prev) {
			return fmt.Errorf("tax band %d: bounds must strictly increase", i)
		}
		if band.UpperBound.LessThanOrEqual(r.PersonalAllowance) {
			return fmt.Errorf("tax band %d: bound must exceed the personal allowance", i)
		}
		prev = band.UpperBound
	}
	if r.Class2Threshold.IsNegative() {
		return fmt.Errorf("class 2 threshold cannot be negative")
	}
	if r.Class2WeeklyRate.IsNegative() {
		return fmt.Errorf("class 2 weekly rate cannot be negative")
	}
	if r.Class4LowerThreshold.IsNegative() {
		return fmt.Errorf("class 4 lower threshold cannot be negative")
	}
	if r.Class4UpperThreshold.LessThanOrEqual(r.Class4LowerThreshold) {
		return fmt.Errorf("class 4 upper threshold must exceed the lower threshold")
	}
	if err := validateRate(r.Class4MainRate); err != nil {
		return fmt.Errorf("class 4 main rate: %w", err)
	}
	if err := validateRate(r.Class4HigherRate); err != nil {
		return fmt.Errorf("class 4 higher rate: %w", err)
	}
	if r.VATThreshold.IsNegative() || r.VATRegistrationThreshold.IsNegative() {
		return fmt.Errorf("VAT thresholds cannot be negative")
	}
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("rate must be between 0 and 1, got %s", rate)
	}
	return nil
}
