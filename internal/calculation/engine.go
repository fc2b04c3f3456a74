package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sololedger/tax-calculator/internal/domain"
	"github.com/sololedger/tax-calculator/internal/rulesets"
	money "github.com/sololedger/tax-calculator/pkg/decimal"
	"github.com/sololedger/tax-calculator/pkg/dateutil"
)

// Engine orchestrates all tax and period calculations. It holds only
// immutable collaborators, so one engine may serve any number of
// concurrent callers without coordination.
type Engine struct {
	Rules     *rulesets.Registry
	Liability *LiabilityCalculator
	Logger    Logger
}

// NewEngine creates an engine backed by the built-in ruleset registry.
func NewEngine() *Engine {
	return NewEngineWithRegistry(rulesets.New())
}

// NewEngineWithRegistry creates an engine with a caller-supplied registry.
func NewEngineWithRegistry(registry *rulesets.Registry) *Engine {
	return &Engine{
		Rules:     registry,
		Liability: NewLiabilityCalculator(),
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// TotalLiability computes the full liability breakdown for a net profit,
// using the ruleset for the tax year containing date. The breakdown and
// the ruleset version travel together; they must never be separated when
// persisted.
func (e *Engine) TotalLiability(profit decimal.Decimal, date time.Time) (domain.LiabilityBreakdown, error) {
	rs, err := e.Rules.ForDate(date)
	if err != nil {
		return domain.LiabilityBreakdown{}, err
	}
	breakdown := e.Liability.Breakdown(profit, rs)
	e.Logger.Debugf("liability for profit %s under %s: %s",
		profit.StringFixed(2), rs.Version, breakdown.Total.StringFixed(2))
	return breakdown, nil
}

// SetAside returns the amount to put by from a payment at a flat
// percentage. This is a discipline aid, not a precise liability figure.
func (e *Engine) SetAside(amount, percentage decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() || !percentage.IsPositive() {
		return decimal.Zero
	}
	return money.NewMoney(amount).
		ApplyRate(percentage.Div(decimal.NewFromInt(100))).
		RoundPence().Decimal
}

// TaxYearSummary aggregates the profile's transactions falling inside
// the given tax year and computes the year's liability, set-aside amount,
// registration deadline and VAT threshold proximity.
func (e *Engine) TaxYearSummary(p *domain.Profile, taxYear string) (*domain.TaxYearSummary, error) {
	start, end, err := dateutil.TaxYearBounds(taxYear)
	if err != nil {
		return nil, err
	}
	rs, err := e.Rules.ForYear(taxYear)
	if err != nil {
		return nil, err
	}

	year := dateutil.Period{Start: start, End: end}
	totalIncome := sumWithin(p.Incomes, year)
	totalExpenses := sumWithin(p.Expenses, year)
	netProfit := totalIncome.Sub(totalExpenses)

	summary := &domain.TaxYearSummary{
		TaxYear:       taxYear,
		TaxYearStart:  start,
		TaxYearEnd:    end,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		Breakdown:     e.Liability.Breakdown(netProfit, rs),
		SetAside:      e.SetAside(totalIncome, p.SetAsidePercentage),
	}

	if !p.TradingStartDate.IsZero() {
		summary.RegistrationDeadline = dateutil.RegistrationDeadline(p.TradingStartDate)
	}
	if rs.VATThreshold.IsPositive() {
		summary.VATThresholdProximity = totalIncome.
			Div(rs.VATThreshold).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return summary, nil
}

// AssessmentPeriodSummary aggregates the profile's transactions inside
// the UC assessment period containing ref. The profile's anchor day must
// be configured and within range.
func (e *Engine) AssessmentPeriodSummary(p *domain.Profile, ref time.Time) (*domain.AssessmentPeriodSummary, error) {
	period, err := dateutil.AssessmentPeriod(ref, p.UCAnchorDay)
	if err != nil {
		return nil, err
	}

	totalIncome := sumWithin(p.Incomes, period)
	totalExpenses := sumWithin(p.Expenses, period)

	return &domain.AssessmentPeriodSummary{
		PeriodStart:   period.Start,
		PeriodEnd:     period.End,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     totalIncome.Sub(totalExpenses),
	}, nil
}

// Snapshot produces a point-in-time record of a tax year's calculation
// for the caller to persist. The ruleset is embedded by value: a
// snapshot's figures must remain reconstructible no matter what happens
// to the live registry afterwards.
func (e *Engine) Snapshot(p *domain.Profile, taxYear string, now time.Time) (*domain.LiabilitySnapshot, error) {
	summary, err := e.TaxYearSummary(p, taxYear)
	if err != nil {
		return nil, fmt.Errorf("snapshot for %s: %w", taxYear, err)
	}
	rs, err := e.Rules.ForYear(taxYear)
	if err != nil {
		return nil, fmt.Errorf("snapshot for %s: %w", taxYear, err)
	}

	return &domain.LiabilitySnapshot{
		TaxYear:       summary.TaxYear,
		TaxYearStart:  summary.TaxYearStart,
		TaxYearEnd:    summary.TaxYearEnd,
		TotalIncome:   summary.TotalIncome,
		TotalExpenses: summary.TotalExpenses,
		NetProfit:     summary.NetProfit,
		Breakdown:     summary.Breakdown,
		Ruleset:       rs.Clone(),
		CreatedAt:     now,
	}, nil
}

func sumWithin(transactions []domain.Transaction, period dateutil.Period) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if period.Contains(tx.Date) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}
