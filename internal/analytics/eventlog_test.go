package analytics_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/edulytics/edulytics-be/internal/analytics"
)

func TestRecordAttempt_Counters(t *testing.T) {
	log := analytics.NewEventLog("s1")

	attempts := []bool{true, false, true, true, false}
	for _, correct := range attempts {
		if err := log.RecordAttempt("fractions", correct); err != nil {
			t.Fatalf("record attempt: %v", err)
		}
	}

	c := log.Counters()
	if c.Attempts != 5 {
		t.Errorf("expected 5 attempts, got %d", c.Attempts)
	}
	if c.Correct != 3 {
		t.Errorf("expected 3 correct, got %d", c.Correct)
	}
	if c.XP != 3*analytics.XPPerCorrect {
		t.Errorf("expected %d xp, got %d", 3*analytics.XPPerCorrect, c.XP)
	}
}

func TestRecordAttempt_EmptyConcept(t *testing.T) {
	log := analytics.NewEventLog("s1")

	for _, concept := range []string{"", "   ", "\t\n"} {
		err := log.RecordAttempt(concept, true)
		if !errors.Is(err, analytics.ErrEmptyConcept) {
			t.Errorf("concept %q: expected ErrEmptyConcept, got %v", concept, err)
		}
	}

	if log.Len() != 0 {
		t.Errorf("refused appends must not grow the log, got len %d", log.Len())
	}
	if c := log.Counters(); c != (analytics.Counters{}) {
		t.Errorf("refused appends must not touch counters, got %+v", c)
	}
}

func TestSnapshot_Idempotent(t *testing.T) {
	log := analytics.NewEventLog("s1")
	_ = log.RecordAttempt("algebra", true)
	_ = log.RecordAttempt("geometry", false)

	a := log.Snapshot()
	b := log.Snapshot()

	if len(a) != len(b) {
		t.Fatalf("snapshots differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("snapshot event %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	log := analytics.NewEventLog("s1")
	_ = log.RecordAttempt("algebra", true)

	snap := log.Snapshot()
	snap[0].Concept = "mutated"

	if got := log.Snapshot()[0].Concept; got != "algebra" {
		t.Errorf("mutating a snapshot leaked into the log: %q", got)
	}
}

func TestSnapshot_ConsistentUnderConcurrentAppend(t *testing.T) {
	log := analytics.NewEventLog("s1")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = log.RecordAttempt("fractions", i%2 == 0)
		}
	}()

	// Every snapshot must be a consistent prefix: no torn events.
	for i := 0; i < 100; i++ {
		snap := log.Snapshot()
		for _, e := range snap {
			if e.Concept != "fractions" || e.StudentID != "s1" {
				t.Fatalf("torn event observed: %+v", e)
			}
		}
	}
	wg.Wait()

	if log.Len() != 500 {
		t.Errorf("expected 500 events after writer finished, got %d", log.Len())
	}
}

func TestRegistry_SessionIsolation(t *testing.T) {
	reg := analytics.NewRegistry()

	a := reg.Register("session-a", "student-a")
	b := reg.Register("session-b", "student-b")

	_ = a.RecordAttempt("fractions", true)

	if got := reg.Get("session-b").Len(); got != 0 {
		t.Errorf("append to session-a leaked into session-b: len %d", got)
	}
	if reg.Get("session-a") != a || reg.Get("session-b") != b {
		t.Error("registry returned wrong log for session")
	}
	if reg.Get("unknown") != nil {
		t.Error("unknown session must return nil")
	}

	reg.Remove("session-a")
	if reg.Get("session-a") != nil {
		t.Error("removed session must return nil")
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 remaining session, got %d", reg.Len())
	}
}
