package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TestTaxYearOf tests tax year identification around the 6 April boundary
func TestTaxYearOf(t *testing.T) {
	tests := []struct {
		name        string
		date        time.Time
		expected    string
		description string
	}{
		{
			name:        "Mid tax year",
			date:        date(2024, 6, 1),
			expected:    "2024-25",
			description: "June clearly inside 2024-25",
		},
		{
			name:        "Before April 6",
			date:        date(2024, 3, 15),
			expected:    "2023-24",
			description: "March belongs to the previous label",
		},
		{
			name:        "Day before boundary",
			date:        date(2024, 4, 5),
			expected:    "2023-24",
			description: "5 April is the last day of the prior year",
		},
		{
			name:        "Boundary day",
			date:        date(2024, 4, 6),
			expected:    "2024-25",
			description: "6 April starts the new year",
		},
		{
			name:        "Day after boundary",
			date:        date(2024, 4, 7),
			expected:    "2024-25",
			description: "First full day of the new year",
		},
		{
			name:        "New year's eve",
			date:        date(2024, 12, 31),
			expected:    "2024-25",
			description: "Calendar year end does not change the label",
		},
		{
			name:        "January after calendar rollover",
			date:        date(2025, 1, 1),
			expected:    "2024-25",
			description: "January still belongs to the label started last April",
		},
		{
			name:        "Century-style suffix",
			date:        date(2029, 5, 1),
			expected:    "2029-30",
			description: "Two-digit suffix keeps its leading zero rule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TaxYearOf(tt.date), tt.description)
		})
	}
}

func TestTaxYearBounds(t *testing.T) {
	start, end, err := TaxYearBounds("2024-25")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 4, 6), start)
	assert.Equal(t, date(2025, 4, 5), end)
}

func TestTaxYearBoundsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{name: "No dash", label: "202425"},
		{name: "Bad start year", label: "20x4-25"},
		{name: "Bad suffix", label: "2024-2x"},
		{name: "Non-consecutive years", label: "2024-26"},
		{name: "Short start year", label: "224-25"},
		{name: "Empty", label: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := TaxYearBounds(tt.label)
			require.Error(t, err)
			var confErr *ConfigurationError
			assert.ErrorAs(t, err, &confErr)
		})
	}
}

// TestTaxYearRoundTrip checks that bounds are the exact inverse of
// identification: both boundary dates of every label map back to it.
func TestTaxYearRoundTrip(t *testing.T) {
	d := date(2020, 1, 1)
	for d.Before(date(2027, 1, 1)) {
		label := TaxYearOf(d)
		start, end, err := TaxYearBounds(label)
		require.NoError(t, err)
		assert.Equal(t, label, TaxYearOf(start), "start of %s must map back", label)
		assert.Equal(t, label, TaxYearOf(end), "end of %s must map back", label)
		assert.False(t, d.Before(start) || d.After(end),
			"%s must fall inside its own label bounds", d.Format("2006-01-02"))
		d = d.AddDate(0, 0, 17)
	}
}

func TestRegistrationDeadline(t *testing.T) {
	tests := []struct {
		name         string
		tradingStart time.Time
		expected     time.Time
		description  string
	}{
		{
			name:         "Mid tax year start",
			tradingStart: date(2024, 6, 1),
			expected:     date(2025, 10, 5),
			description:  "2024-25 ends 5 Apr 2025, deadline following October",
		},
		{
			name:         "Start before April boundary",
			tradingStart: date(2024, 2, 1),
			expected:     date(2024, 10, 5),
			description:  "2023-24 ends 5 Apr 2024, deadline October 2024",
		},
		{
			name:         "Start on boundary day",
			tradingStart: date(2024, 4, 6),
			expected:     date(2025, 10, 5),
			description:  "6 April opens 2024-25",
		},
		{
			name:         "Start on last day of tax year",
			tradingStart: date(2025, 4, 5),
			expected:     date(2025, 10, 5),
			description:  "5 April still belongs to 2024-25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RegistrationDeadline(tt.tradingStart), tt.description)
		})
	}
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 31, DaysUntil(date(2024, 1, 1), date(2024, 2, 1)))
	assert.Equal(t, -1, DaysUntil(date(2024, 1, 2), date(2024, 1, 1)))
	assert.Equal(t, 0, DaysUntil(date(2024, 1, 1), date(2024, 1, 1)))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.False(t, IsLeapYear(2023))
	assert.False(t, IsLeapYear(1900))
	assert.True(t, IsLeapYear(2000))
}
