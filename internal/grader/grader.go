package grader

import "strings"

// Grade decides whether a user's answer is correct.
//
// The rule is case-insensitive substring containment: the answer is correct
// when it contains the expected answer anywhere inside it. This is a
// deliberate leniency (a student typing "the answer is paris" passes for
// expected "Paris") and carries a known false-positive risk for very short
// expected answers, e.g. expected "8" inside "18".
func Grade(expected, answer string) bool {
	expected = strings.TrimSpace(strings.ToLower(expected))
	if expected == "" {
		return false
	}
	return strings.Contains(strings.ToLower(answer), expected)
}
