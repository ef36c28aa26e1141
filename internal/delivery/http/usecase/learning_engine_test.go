package usecase

import (
	"strings"
	"testing"
)

func TestParseConceptLines(t *testing.T) {
	raw := `- Fractions and decimals
• Photosynthesis
1. Newton's first law

2) The water cycle
* Plate tectonics`

	concepts := parseConceptLines(raw)

	want := []string{
		"Fractions and decimals",
		"Photosynthesis",
		"Newton's first law",
		"The water cycle",
		"Plate tectonics",
	}
	if len(concepts) != len(want) {
		t.Fatalf("expected %d concepts, got %d: %v", len(want), len(concepts), concepts)
	}
	for i := range want {
		if concepts[i] != want[i] {
			t.Errorf("concept %d: expected %q, got %q", i, want[i], concepts[i])
		}
	}
}

func TestParseConceptLines_NoNormalization(t *testing.T) {
	// Labels are trimmed but never case-folded or deduplicated.
	concepts := parseConceptLines("Fractions\nfractions\nFRACTIONS")
	if len(concepts) != 3 {
		t.Fatalf("expected 3 distinct labels, got %v", concepts)
	}
}

func TestParseConceptLines_Empty(t *testing.T) {
	if got := parseConceptLines("\n  \n\t"); len(got) != 0 {
		t.Errorf("expected no concepts, got %v", got)
	}
}

func TestSplitQuestionAnswer(t *testing.T) {
	block := `Which of the following describes photosynthesis?
A) Breaking down glucose
B) Converting light energy into chemical energy
C) Absorbing oxygen
D) Releasing nitrogen

ANSWER: B`

	body, answer, ok := splitQuestionAnswer(block)
	if !ok {
		t.Fatal("expected block to split")
	}
	if answer != "B" {
		t.Errorf("expected answer %q, got %q", "B", answer)
	}
	if !strings.Contains(body, "photosynthesis") || strings.Contains(body, "ANSWER:") {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestSplitQuestionAnswer_MissingMarker(t *testing.T) {
	if _, _, ok := splitQuestionAnswer("a question without the marker"); ok {
		t.Error("expected block without marker to be rejected")
	}
}

func TestSplitQuestionAnswer_EmptyAnswer(t *testing.T) {
	if _, _, ok := splitQuestionAnswer("Question?\nANSWER:   "); ok {
		t.Error("expected empty answer to be rejected")
	}
}

func TestGenerateQuestionID_Deterministic(t *testing.T) {
	a := generateQuestionID("fractions", "B")
	b := generateQuestionID("fractions", "B")
	c := generateQuestionID("algebra", "B")

	if a != b {
		t.Errorf("same inputs must hash identically: %q vs %q", a, b)
	}
	if a == c {
		t.Error("different concepts must not collide")
	}
	if !strings.HasPrefix(a, "q-") {
		t.Errorf("unexpected id shape: %q", a)
	}
}

func TestSummarizeSnapshot_EmptyIsValid(t *testing.T) {
	s := summarizeSnapshot(nil)
	if !strings.Contains(s, "\"total_attempts\":0") {
		t.Errorf("expected zero totals in summary, got %s", s)
	}
}
