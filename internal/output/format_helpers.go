package output

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sololedger/tax-calculator/pkg/dateutil"
)

// FormatMoney formats a decimal as GBP currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatMoney(amount decimal.Decimal) string { return "£" + amount.StringFixed(2) }

// FormatPercent formats a decimal as a percentage with 2 decimals.
func FormatPercent(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatDate renders a calendar date as ISO 8601.
func FormatDate(d time.Time) string { return d.Format("2006-01-02") }

// taxYearOf labels a transaction date with its tax year for exports.
func taxYearOf(d time.Time) string { return dateutil.TaxYearOf(d) }
