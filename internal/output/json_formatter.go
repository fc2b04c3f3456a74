package output

import (
	"encoding/json"

	"github.com/sololedger/tax-calculator/internal/domain"
)

// JSONFormatter serializes the tax-year summary as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(summary *domain.TaxYearSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}

// MarshalSnapshot serializes a liability snapshot as pretty-printed
// JSON. The snapshot embeds its full ruleset, so the output is
// self-describing without the live registry.
func MarshalSnapshot(snapshot *domain.LiabilitySnapshot) ([]byte, error) {
	return json.MarshalIndent(snapshot, "", "  ")
}

// MarshalRecommendation serializes a set-aside recommendation.
func MarshalRecommendation(rec domain.Recommendation) ([]byte, error) {
	return json.MarshalIndent(rec, "", "  ")
}
