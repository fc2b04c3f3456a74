// Package dateutil implements UK tax-year and Universal Credit
// assessment-period date arithmetic. All functions are pure and operate
// on UTC calendar dates; time-of-day components are ignored.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The UK tax year runs from 6 April to 5 April of the following year.
const (
	TaxYearStartDay   = 6
	TaxYearStartMonth = time.April
)

// Self Assessment registration is due by 5 October following the end of
// the tax year in which trading started.
const (
	RegistrationDeadlineDay   = 5
	RegistrationDeadlineMonth = time.October
)

// UC assessment periods are anchored to a day-of-month. Days above 28
// are rejected so that every month, February included, has the anchor.
const (
	MinAssessmentDay = 1
	MaxAssessmentDay = 28
)

// ConfigurationError reports an invalid caller-supplied configuration
// value, such as an out-of-range assessment day or a malformed tax-year
// label. Retrying with the same input reproduces the same failure.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// Period is an inclusive [Start, End] calendar-date pair.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the period, inclusive of both
// boundary dates.
func (p Period) Contains(d time.Time) bool {
	day := midnight(d)
	return !day.Before(p.Start) && !day.After(p.End)
}

func midnight(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// TaxYearOf returns the UK tax year label for a given date, in the form
// "2024-25". Dates before 6 April belong to the previous label.
func TaxYearOf(d time.Time) string {
	startYear := d.Year()
	if d.Month() < TaxYearStartMonth ||
		(d.Month() == TaxYearStartMonth && d.Day() < TaxYearStartDay) {
		startYear--
	}
	return formatLabel(startYear)
}

func formatLabel(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// ParseTaxYear extracts the starting calendar year from a tax-year label.
// The two-digit suffix must match the year that follows the start year.
func ParseTaxYear(label string) (int, error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 {
		return 0, &ConfigurationError{Reason: fmt.Sprintf("malformed tax year %q, want e.g. \"2024-25\"", label)}
	}
	startYear, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return 0, &ConfigurationError{Reason: fmt.Sprintf("malformed tax year %q, want e.g. \"2024-25\"", label)}
	}
	suffix, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return 0, &ConfigurationError{Reason: fmt.Sprintf("malformed tax year %q, want e.g. \"2024-25\"", label)}
	}
	if suffix != (startYear+1)%100 {
		return 0, &ConfigurationError{Reason: fmt.Sprintf("tax year %q does not span consecutive years", label)}
	}
	return startYear, nil
}

// TaxYearBounds returns the first and last dates of a tax year label.
// It is the exact inverse of TaxYearOf: both returned dates map back to
// the given label.
func TaxYearBounds(label string) (time.Time, time.Time, error) {
	startYear, err := ParseTaxYear(label)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(startYear, TaxYearStartMonth, TaxYearStartDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(startYear+1, TaxYearStartMonth, TaxYearStartDay, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return start, end, nil
}

// RegistrationDeadline returns the Self Assessment registration deadline
// for a business that began trading on tradingStart: 5 October following
// the end of that tax year. If a tax-year end ever landed after 5 October
// (impossible with the fixed April boundary) the deadline rolls to the
// following year rather than falling before the year-end.
func RegistrationDeadline(tradingStart time.Time) time.Time {
	startYear := tradingStart.Year()
	if tradingStart.Month() < TaxYearStartMonth ||
		(tradingStart.Month() == TaxYearStartMonth && tradingStart.Day() < TaxYearStartDay) {
		startYear--
	}
	yearEnd := time.Date(startYear+1, TaxYearStartMonth, TaxYearStartDay, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	deadlineYear := yearEnd.Year()
	if yearEnd.Month() > RegistrationDeadlineMonth ||
		(yearEnd.Month() == RegistrationDeadlineMonth && yearEnd.Day() > RegistrationDeadlineDay) {
		deadlineYear++
	}
	return time.Date(deadlineYear, RegistrationDeadlineMonth, RegistrationDeadlineDay, 0, 0, 0, 0, time.UTC)
}

// AssessmentPeriod returns the UC assessment period containing ref.
// Periods run monthly from anchorDay: if ref's day-of-month is at or past
// the anchor the period starts this month, otherwise it started in the
// previous month. The end date is the day before the next period starts.
func AssessmentPeriod(ref time.Time, anchorDay int) (Period, error) {
	if anchorDay < MinAssessmentDay || anchorDay > MaxAssessmentDay {
		return Period{}, &ConfigurationError{
			Reason: fmt.Sprintf("assessment day must be between %d and %d, got %d",
				MinAssessmentDay, MaxAssessmentDay, anchorDay),
		}
	}

	year, month := ref.Year(), ref.Month()
	var start time.Time
	if ref.Day() >= anchorDay {
		start = time.Date(year, month, anchorDay, 0, 0, 0, 0, time.UTC)
	} else if month == time.January {
		start = time.Date(year-1, time.December, anchorDay, 0, 0, 0, 0, time.UTC)
	} else {
		start = time.Date(year, month-1, anchorDay, 0, 0, 0, 0, time.UTC)
	}

	return Period{Start: start, End: nextAnchor(start, anchorDay).AddDate(0, 0, -1)}, nil
}

// NextAssessmentPeriod returns the period immediately following the one
// starting at currentStart. The start advances by exactly one calendar
// month, never by a fixed day count.
func NextAssessmentPeriod(currentStart time.Time, anchorDay int) (Period, error) {
	if anchorDay < MinAssessmentDay || anchorDay > MaxAssessmentDay {
		return Period{}, &ConfigurationError{
			Reason: fmt.Sprintf("assessment day must be between %d and %d, got %d",
				MinAssessmentDay, MaxAssessmentDay, anchorDay),
		}
	}
	return AssessmentPeriod(nextAnchor(currentStart, anchorDay), anchorDay)
}

// nextAnchor returns anchorDay in the calendar month after start.
// anchorDay is at most 28, so the result is a valid date in every month.
func nextAnchor(start time.Time, anchorDay int) time.Time {
	if start.Month() == time.December {
		return time.Date(start.Year()+1, time.January, anchorDay, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(start.Year(), start.Month()+1, anchorDay, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of whole days from `from` until `until`,
// negative when until precedes from.
func DaysUntil(from, until time.Time) int {
	return int(midnight(until).Sub(midnight(from)).Hours() / 24)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
