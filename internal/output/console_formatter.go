package output

import (
	"bytes"
	"fmt"

	"github.com/sololedger/tax-calculator/internal/domain"
)

// ConsoleFormatter renders a tax-year summary as aligned plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summary *domain.TaxYearSummary) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "Tax year %s (%s to %s)\n",
		summary.TaxYear, FormatDate(summary.TaxYearStart), FormatDate(summary.TaxYearEnd))
	fmt.Fprintf(buf, "%-24s %14s\n", "Total income", FormatMoney(summary.TotalIncome))
	fmt.Fprintf(buf, "%-24s %14s\n", "Total expenses", FormatMoney(summary.TotalExpenses))
	fmt.Fprintf(buf, "%-24s %14s\n", "Net profit", FormatMoney(summary.NetProfit))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%-24s %14s\n", "Income tax", FormatMoney(summary.Breakdown.IncomeTax))
	fmt.Fprintf(buf, "%-24s %14s\n", "NI Class 2", FormatMoney(summary.Breakdown.Class2))
	fmt.Fprintf(buf, "%-24s %14s\n", "NI Class 4", FormatMoney(summary.Breakdown.Class4))
	fmt.Fprintf(buf, "%-24s %14s\n", "Total liability", FormatMoney(summary.Breakdown.Total))
	fmt.Fprintf(buf, "%-24s %14s\n", "Ruleset", summary.Breakdown.RulesetVersion)
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%-24s %14s\n", "Set aside", FormatMoney(summary.SetAside))
	fmt.Fprintf(buf, "%-24s %14s\n", "VAT threshold used", FormatPercent(summary.VATThresholdProximity))
	if !summary.RegistrationDeadline.IsZero() {
		fmt.Fprintf(buf, "%-24s %14s\n", "Register with HMRC by", FormatDate(summary.RegistrationDeadline))
	}

	return buf.Bytes(), nil
}
