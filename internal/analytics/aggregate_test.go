package analytics_test

import (
	"math"
	"testing"

	"github.com/edulytics/edulytics-be/internal/analytics"
)

func buildSnapshot(t *testing.T, attempts []struct {
	concept string
	correct bool
}) []analytics.Event {
	t.Helper()
	log := analytics.NewEventLog("student-1")
	for _, a := range attempts {
		if err := log.RecordAttempt(a.concept, a.correct); err != nil {
			t.Fatalf("record attempt: %v", err)
		}
	}
	return log.Snapshot()
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.05
}

func TestAccuracyPercent_EmptyLog(t *testing.T) {
	if got := analytics.AccuracyPercent(nil); got != 0 {
		t.Errorf("empty log accuracy: expected 0, got %v", got)
	}
}

func TestConceptFrequency_SumEqualsLogLength(t *testing.T) {
	snap := buildSnapshot(t, []struct {
		concept string
		correct bool
	}{
		{"fractions", true},
		{"fractions", false},
		{"algebra", true},
		{"geometry", false},
		{"algebra", true},
	})

	freq := analytics.ConceptFrequency(snap)
	sum := 0
	for _, n := range freq {
		sum += n
	}
	if sum != len(snap) {
		t.Errorf("frequency sum %d != log length %d", sum, len(snap))
	}
}

func TestConceptFrequency_CaseSensitiveGrouping(t *testing.T) {
	snap := buildSnapshot(t, []struct {
		concept string
		correct bool
	}{
		{"Fractions", true},
		{"fractions", true},
	})

	freq := analytics.ConceptFrequency(snap)
	if len(freq) != 2 {
		t.Errorf("labels differing only in case must stay distinct, got %v", freq)
	}
}

func TestConceptAccuracy_TwoOfThree(t *testing.T) {
	snap := buildSnapshot(t, []struct {
		concept string
		correct bool
	}{
		{"fractions", true},
		{"fractions", false},
		{"fractions", true},
	})

	acc := analytics.ConceptAccuracy(snap)
	if !almostEqual(acc["fractions"], 66.7) {
		t.Errorf("expected ~66.7, got %v", acc["fractions"])
	}
}

func TestEngagementSeries_PreservesAppendOrder(t *testing.T) {
	outcomes := []bool{true, false, false, true, true}
	attempts := make([]struct {
		concept string
		correct bool
	}, 0, len(outcomes))
	for _, correct := range outcomes {
		attempts = append(attempts, struct {
			concept string
			correct bool
		}{"algebra", correct})
	}
	snap := buildSnapshot(t, attempts)

	series := analytics.EngagementSeries(snap)
	if len(series) != len(snap) {
		t.Fatalf("series length %d != log length %d", len(series), len(snap))
	}
	for i, p := range series {
		if p.Index != i+1 {
			t.Errorf("point %d: expected index %d, got %d", i, i+1, p.Index)
		}
		if p.Correct != outcomes[i] {
			t.Errorf("point %d: expected correct=%v, got %v", i, outcomes[i], p.Correct)
		}
	}
}

func TestEngagementSeries_EmptyLog(t *testing.T) {
	if got := analytics.EngagementSeries(nil); len(got) != 0 {
		t.Errorf("expected empty series, got %v", got)
	}
}

func TestPlatformTotals(t *testing.T) {
	logA := analytics.NewEventLog("student-a")
	logB := analytics.NewEventLog("student-b")
	_ = logA.RecordAttempt("fractions", true)
	_ = logA.RecordAttempt("algebra", false)
	_ = logB.RecordAttempt("fractions", true)

	combined := append(logA.Snapshot(), logB.Snapshot()...)
	totals := analytics.PlatformTotals(combined)

	if totals.ActiveStudents != 2 {
		t.Errorf("expected 2 active students, got %d", totals.ActiveStudents)
	}
	if totals.TotalAttempts != 3 {
		t.Errorf("expected 3 total attempts, got %d", totals.TotalAttempts)
	}
}

func TestPlatformTotals_EmptyLog(t *testing.T) {
	totals := analytics.PlatformTotals(nil)
	if totals.ActiveStudents != 0 || totals.TotalAttempts != 0 {
		t.Errorf("expected zero totals, got %+v", totals)
	}
}

// The end-to-end scenario: three attempts across two concepts.
func TestAggregation_EndToEnd(t *testing.T) {
	log := analytics.NewEventLog("student-1")
	_ = log.RecordAttempt("fractions", true)
	_ = log.RecordAttempt("fractions", false)
	_ = log.RecordAttempt("algebra", true)

	c := log.Counters()
	if c.Attempts != 3 || c.Correct != 2 || c.XP != 20 {
		t.Errorf("expected attempts=3 correct=2 xp=20, got %+v", c)
	}

	snap := log.Snapshot()

	if got := analytics.AccuracyPercent(snap); !almostEqual(got, 66.7) {
		t.Errorf("expected accuracy ~66.7, got %v", got)
	}

	freq := analytics.ConceptFrequency(snap)
	if freq["fractions"] != 2 || freq["algebra"] != 1 {
		t.Errorf("unexpected concept frequency: %v", freq)
	}

	acc := analytics.ConceptAccuracy(snap)
	if !almostEqual(acc["fractions"], 50.0) {
		t.Errorf("expected fractions accuracy 50.0, got %v", acc["fractions"])
	}
	if !almostEqual(acc["algebra"], 100.0) {
		t.Errorf("expected algebra accuracy 100.0, got %v", acc["algebra"])
	}

	if totals := analytics.PlatformTotals(snap); totals.TotalAttempts != 3 {
		t.Errorf("expected total attempts 3, got %d", totals.TotalAttempts)
	}
}
