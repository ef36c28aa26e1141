package grader_test

import (
	"testing"

	"github.com/edulytics/edulytics-be/internal/grader"
)

func TestGrade_Containment(t *testing.T) {
	cases := []struct {
		name     string
		expected string
		answer   string
		want     bool
	}{
		{"exact match", "Paris", "Paris", true},
		{"case insensitive", "Paris", "paris", true},
		{"answer inside sentence", "Paris", "I think the answer is PARIS.", true},
		{"expected padded with spaces", "  Paris ", "paris", true},
		{"wrong answer", "Paris", "London", false},
		{"partial of expected is not enough", "Paris", "Par", false},
		{"empty answer", "Paris", "", false},
		{"empty expected never matches", "", "anything", false},
		// Documented leniency: short expected answers can false-positive.
		{"digit contained in larger number", "8", "18", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := grader.Grade(tc.expected, tc.answer); got != tc.want {
				t.Errorf("Grade(%q, %q) = %v, want %v", tc.expected, tc.answer, got, tc.want)
			}
		})
	}
}
