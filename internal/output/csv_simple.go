package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/sololedger/tax-calculator/internal/domain"
)

// CSVSummarizer implements the one-row summary CSV output.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(summary *domain.TaxYearSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"TaxYear", "TotalIncome", "TotalExpenses", "NetProfit", "IncomeTax", "NIClass2", "NIClass4", "TotalTax", "SetAside", "RulesetVersion"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		summary.TaxYear,
		summary.TotalIncome.StringFixed(2),
		summary.TotalExpenses.StringFixed(2),
		summary.NetProfit.StringFixed(2),
		summary.Breakdown.IncomeTax.StringFixed(2),
		summary.Breakdown.Class2.StringFixed(2),
		summary.Breakdown.Class4.StringFixed(2),
		summary.Breakdown.Total.StringFixed(2),
		summary.SetAside.StringFixed(2),
		summary.Breakdown.RulesetVersion,
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// TransactionsCSV exports every transaction in a profile, incomes then
// expenses, each list in date order.
func TransactionsCSV(profile *domain.Profile) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Type", "Date", "Amount", "Description", "Category", "TaxYear"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	writeRows := func(kind string, transactions []domain.Transaction) error {
		sorted := append([]domain.Transaction(nil), transactions...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })
		for _, tx := range sorted {
			row := []string{
				kind,
				FormatDate(tx.Date),
				tx.Amount.StringFixed(2),
				tx.Description,
				tx.Category,
				taxYearOf(tx.Date),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRows("Income", profile.Incomes); err != nil {
		return nil, err
	}
	if err := writeRows("Expense", profile.Expenses); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
