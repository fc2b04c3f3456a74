package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Transaction is a single dated income or expense entry. Amounts are
// always positive; whether it adds to or subtracts from profit depends on
// which Profile list it sits in.
type Transaction struct {
	Date        time.Time       `yaml:"date" json:"date"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Category    string          `yaml:"category,omitempty" json:"category,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Transaction
// so that amounts can be written as quoted decimal strings.
func (t *Transaction) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		Date        time.Time `yaml:"date"`
		Amount      string    `yaml:"amount"`
		Description string    `yaml:"description,omitempty"`
		Category    string    `yaml:"category,omitempty"`
	}

	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(aux.Amount)
	if err != nil {
		return err
	}

	t.Date = aux.Date
	t.Amount = amount
	t.Description = aux.Description
	t.Category = aux.Category
	return nil
}

// Profile carries everything the calculation core needs to know about
// one self-employed user: plain values only, no storage or identity.
type Profile struct {
	TradingStartDate time.Time `yaml:"trading_start_date,omitempty" json:"trading_start_date,omitempty"`

	// UCAnchorDay is the day-of-month UC assessment periods start on,
	// 1-28, or zero when UC reporting is not configured.
	UCAnchorDay int `yaml:"uc_anchor_day,omitempty" json:"uc_anchor_day,omitempty"`

	SetAsidePercentage decimal.Decimal `yaml:"set_aside_percentage" json:"set_aside_percentage"`

	Incomes  []Transaction `yaml:"incomes" json:"incomes"`
	Expenses []Transaction `yaml:"expenses" json:"expenses"`
}

// UnmarshalYAML implements custom YAML unmarshaling for Profile
// so that the percentage can be written as a quoted decimal string.
func (p *Profile) UnmarshalYAML(value *yaml.Node) error {
	type alias struct {
		TradingStartDate   time.Time     `yaml:"trading_start_date,omitempty"`
		UCAnchorDay        int           `yaml:"uc_anchor_day,omitempty"`
		SetAsidePercentage string        `yaml:"set_aside_percentage"`
		Incomes            []Transaction `yaml:"incomes"`
		Expenses           []Transaction `yaml:"expenses"`
	}

	var aux alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	pct := decimal.Zero
	if aux.SetAsidePercentage != "" {
		var err error
		pct, err = decimal.NewFromString(aux.SetAsidePercentage)
		if err != nil {
			return err
		}
	}

	p.TradingStartDate = aux.TradingStartDate
	p.UCAnchorDay = aux.UCAnchorDay
	p.SetAsidePercentage = pct
	p.Incomes = aux.Incomes
	p.Expenses = aux.Expenses
	return nil
}
