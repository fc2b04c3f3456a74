package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/sololedger/tax-calculator/internal/domain"
	"github.com/sololedger/tax-calculator/pkg/dateutil"
)

// InputParser handles parsing of profile input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// ValidateProfile validates the loaded profile
func (ip *InputParser) ValidateProfile(profile *domain.Profile) error {
	// Anchor day zero means UC reporting is not configured.
	if profile.UCAnchorDay != 0 &&
		(profile.UCAnchorDay < dateutil.MinAssessmentDay || profile.UCAnchorDay > dateutil.MaxAssessmentDay) {
		return fmt.Errorf("uc_anchor_day must be between %d and %d, got %d",
			dateutil.MinAssessmentDay, dateutil.MaxAssessmentDay, profile.UCAnchorDay)
	}

	if profile.SetAsidePercentage.IsNegative() ||
		profile.SetAsidePercentage.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("set_aside_percentage must be between 0 and 100")
	}

	for i, tx := range profile.Incomes {
		if err := ip.validateTransaction(&tx); err != nil {
			return fmt.Errorf("income %d validation failed: %w", i, err)
		}
	}
	for i, tx := range profile.Expenses {
		if err := ip.validateTransaction(&tx); err != nil {
			return fmt.Errorf("expense %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateTransaction validates a single transaction
func (ip *InputParser) validateTransaction(tx *domain.Transaction) error {
	if tx.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if !tx.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
