package analytics

import "time"

// Stateless queries over an EventLog snapshot, one per analytics view.
// All of them are total: an empty snapshot yields the documented zero
// values, never an error.

// EngagementPoint is one attempt outcome in append order, as rendered by
// the engagement line chart. Index is 1-based.
type EngagementPoint struct {
	Index     int    `json:"index"`
	Timestamp string `json:"timestamp"`
	Correct   bool   `json:"correct"`
}

// Totals is the coarse platform-wide view for the admin dashboard.
type Totals struct {
	ActiveStudents int `json:"active_students"`
	TotalAttempts  int `json:"total_attempts"`
}

// AccuracyPercent returns 100*correct/attempts in [0,100].
// The max(1, attempts) guard makes the empty log read as 0%.
func AccuracyPercent(snapshot []Event) float64 {
	attempts := len(snapshot)
	correct := 0
	for _, e := range snapshot {
		if e.Correct {
			correct++
		}
	}
	if attempts < 1 {
		attempts = 1
	}
	return 100 * float64(correct) / float64(attempts)
}

// ConceptFrequency counts attempts per distinct concept string. Grouping is
// exact and case-sensitive: labels are never normalized or fuzzily merged.
func ConceptFrequency(snapshot []Event) map[string]int {
	freq := make(map[string]int, len(snapshot))
	for _, e := range snapshot {
		freq[e.Concept]++
	}
	return freq
}

// ConceptAccuracy returns the mean correctness (as a percentage) over all
// attempts sharing a concept string.
func ConceptAccuracy(snapshot []Event) map[string]float64 {
	type tally struct {
		correct int
		total   int
	}
	tallies := make(map[string]tally, len(snapshot))
	for _, e := range snapshot {
		t := tallies[e.Concept]
		t.total++
		if e.Correct {
			t.correct++
		}
		tallies[e.Concept] = t
	}

	acc := make(map[string]float64, len(tallies))
	for concept, t := range tallies {
		acc[concept] = 100 * float64(t.correct) / float64(t.total)
	}
	return acc
}

// EngagementSeries returns the raw per-attempt outcome sequence in append
// order. This is literally the correctness flags, not a binned rate.
func EngagementSeries(snapshot []Event) []EngagementPoint {
	series := make([]EngagementPoint, 0, len(snapshot))
	for i, e := range snapshot {
		series = append(series, EngagementPoint{
			Index:     i + 1,
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Correct:   e.Correct,
		})
	}
	return series
}

// PlatformTotals counts distinct student IDs and total attempts. In a
// single-session deployment ActiveStudents degenerates to 1.
func PlatformTotals(snapshot []Event) Totals {
	students := make(map[string]struct{})
	for _, e := range snapshot {
		if e.StudentID != "" {
			students[e.StudentID] = struct{}{}
		}
	}
	return Totals{
		ActiveStudents: len(students),
		TotalAttempts:  len(snapshot),
	}
}
