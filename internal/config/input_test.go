package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sololedger/tax-calculator/internal/domain"
)

const validProfileYAML = `trading_start_date: 2024-06-01
uc_anchor_day: 15
set_aside_percentage: "20"
incomes:
  - date: 2024-06-20
    amount: "1500.00"
    description: Website build
  - date: 2024-07-02
    amount: "950.50"
    description: Retainer
expenses:
  - date: 2024-06-22
    amount: "200.00"
    description: Accounting software
    category: software
`

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	profile, err := parser.LoadFromFile(writeProfile(t, validProfileYAML))
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), profile.TradingStartDate)
	assert.Equal(t, 15, profile.UCAnchorDay)
	assert.True(t, profile.SetAsidePercentage.Equal(decimal.NewFromInt(20)))

	require.Len(t, profile.Incomes, 2)
	assert.Equal(t, "1500.00", profile.Incomes[0].Amount.StringFixed(2))
	assert.Equal(t, "950.50", profile.Incomes[1].Amount.StringFixed(2))
	assert.Equal(t, "Website build", profile.Incomes[0].Description)

	require.Len(t, profile.Expenses, 1)
	assert.Equal(t, "200.00", profile.Expenses[0].Amount.StringFixed(2))
	assert.Equal(t, "software", profile.Expenses[0].Category)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeProfile(t, "incomes: [}"))
	assert.Error(t, err)
}

func TestLoadFromFileBadAmount(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeProfile(t, `incomes:
  - date: 2024-06-20
    amount: "lots"
`))
	assert.Error(t, err)
}

func TestValidateProfile(t *testing.T) {
	parser := NewInputParser()
	txDate := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		profile domain.Profile
		wantErr string
	}{
		{
			name:    "Anchor day too high",
			profile: domain.Profile{UCAnchorDay: 29},
			wantErr: "uc_anchor_day",
		},
		{
			name:    "Anchor day negative",
			profile: domain.Profile{UCAnchorDay: -3},
			wantErr: "uc_anchor_day",
		},
		{
			name:    "Percentage above 100",
			profile: domain.Profile{SetAsidePercentage: decimal.NewFromInt(150)},
			wantErr: "set_aside_percentage",
		},
		{
			name:    "Negative percentage",
			profile: domain.Profile{SetAsidePercentage: decimal.NewFromInt(-5)},
			wantErr: "set_aside_percentage",
		},
		{
			name: "Income without date",
			profile: domain.Profile{
				Incomes: []domain.Transaction{{Amount: decimal.NewFromInt(100)}},
			},
			wantErr: "income 0",
		},
		{
			name: "Expense with zero amount",
			profile: domain.Profile{
				Expenses: []domain.Transaction{{Date: txDate}},
			},
			wantErr: "expense 0",
		},
		{
			name: "Negative income amount",
			profile: domain.Profile{
				Incomes: []domain.Transaction{{Date: txDate, Amount: decimal.NewFromInt(-10)}},
			},
			wantErr: "income 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateProfile(&tt.profile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateProfileAllowsUnconfiguredUC(t *testing.T) {
	parser := NewInputParser()
	profile := domain.Profile{SetAsidePercentage: decimal.NewFromInt(20)}
	assert.NoError(t, parser.ValidateProfile(&profile))
}
