// Package rulesets holds the versioned table of UK tax-year rule
// parameters. Entries are authored data, loaded once and read-only
// thereafter; a lookup miss is a hard failure, never a nearest-year
// fallback, because computing money owed with the wrong year's rates is
// a correctness violation rather than a degraded result.
package rulesets

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sololedger/tax-calculator/internal/domain"
	"github.com/sololedger/tax-calculator/pkg/dateutil"
)

// NotFoundError reports that no ruleset is registered for a tax year.
// The message enumerates the registered years to aid diagnosis.
type NotFoundError struct {
	TaxYear   string
	Available []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no tax ruleset available for tax year %s (available: %s)",
		e.TaxYear, strings.Join(e.Available, ", "))
}

// Registry is an immutable lookup table of rulesets keyed by tax-year
// label. The zero value is not usable; construct with New. Lookups are
// safe for unbounded concurrent use because nothing mutates entries
// after registration.
type Registry struct {
	entries map[string]domain.Ruleset
}

// New returns a registry populated with the built-in rule table.
func New() *Registry {
	r := &Registry{entries: make(map[string]domain.Ruleset)}
	for _, rs := range builtin() {
		if err := r.Register(rs); err != nil {
			// The built-in table is authored in this package; an invalid
			// entry is a programming error caught by the table tests.
			panic(fmt.Sprintf("rulesets: invalid built-in entry %s: %v", rs.TaxYear, err))
		}
	}
	return r
}

// Register adds a ruleset for a new tax year. Existing entries are never
// replaced: amending a published year would silently rewrite history, so
// a duplicate label is rejected.
func (r *Registry) Register(rs domain.Ruleset) error {
	if err := rs.Validate(); err != nil {
		return fmt.Errorf("ruleset %s failed validation: %w", rs.TaxYear, err)
	}
	if _, err := dateutil.ParseTaxYear(rs.TaxYear); err != nil {
		return err
	}
	if _, exists := r.entries[rs.TaxYear]; exists {
		return fmt.Errorf("ruleset for tax year %s already registered; published rulesets are immutable", rs.TaxYear)
	}
	r.entries[rs.TaxYear] = rs.Clone()
	return nil
}

// ForYear returns the ruleset for a tax-year label, or a NotFoundError
// when the label has no entry.
func (r *Registry) ForYear(taxYear string) (domain.Ruleset, error) {
	rs, ok := r.entries[taxYear]
	if !ok {
		return domain.Ruleset{}, &NotFoundError{TaxYear: taxYear, Available: r.AvailableYears()}
	}
	return rs.Clone(), nil
}

// ForDate resolves the tax year containing d and returns its ruleset.
func (r *Registry) ForDate(d time.Time) (domain.Ruleset, error) {
	return r.ForYear(dateutil.TaxYearOf(d))
}

// AvailableYears returns the registered tax-year labels in ascending
// order.
func (r *Registry) AvailableYears() []string {
	years := make([]string, 0, len(r.entries))
	for year := range r.entries {
		years = append(years, year)
	}
	sort.Strings(years)
	return years
}
