package reconcile

import (
	"time"

	"github.com/google/uuid"

	"jsethi/finanalyzer/internal/models"
)

// GroupSummary counts the matches of one statement group by quality.
type GroupSummary struct {
	TotalMatches   int `json:"total_matches"`
	ExactMatches   int `json:"exact_matches"`
	FuzzyMatches   int `json:"fuzzy_matches"`
	PartialMatches int `json:"partial_matches"`
}

// Report is the full reconciliation output: per-group and overall counts
// plus every match with both original records. It is written once and
// persisted verbatim.
type Report struct {
	ReportID    string                          `json:"report_id"`
	GeneratedAt time.Time                       `json:"generated_at"`
	Summary     map[string]GroupSummary         `json:"reconciliation_summary"`
	Overall     GroupSummary                    `json:"overall"`
	Matches     map[string][]models.MatchResult `json:"matches"`
}

// BuildReport aggregates match results into a Report. Groups with zero
// matches still appear in the summary so the caller can see they ran.
func BuildReport(matches map[string][]models.MatchResult) Report {
	report := Report{
		ReportID:    uuid.NewString(),
		GeneratedAt: time.Now(),
		Summary:     make(map[string]GroupSummary, len(matches)),
		Matches:     matches,
	}

	for groupKey, matchList := range matches {
		s := GroupSummary{TotalMatches: len(matchList)}
		for _, m := range matchList {
			switch m.MatchType {
			case models.MatchExact:
				s.ExactMatches++
			case models.MatchFuzzy:
				s.FuzzyMatches++
			case models.MatchPartial:
				s.PartialMatches++
			}
		}
		report.Summary[groupKey] = s

		report.Overall.TotalMatches += s.TotalMatches
		report.Overall.ExactMatches += s.ExactMatches
		report.Overall.FuzzyMatches += s.FuzzyMatches
		report.Overall.PartialMatches += s.PartialMatches
	}

	return report
}
