package analytics

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// XPPerCorrect is the fixed reward added to a session's XP for every
// correctly answered attempt.
const XPPerCorrect = 10

var ErrEmptyConcept = errors.New("concept must not be empty")

// Event is one graded quiz attempt. Events are immutable once appended;
// append order is the only ordering the log guarantees.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	StudentID string    `json:"student_id"`
	Concept   string    `json:"concept"`
	Correct   bool      `json:"correct"`
}

// Counters are the running totals cached alongside the log so the hot
// student path never has to rescan events.
type Counters struct {
	XP       int `json:"xp"`
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

// EventLog is the append-only record of attempts for one learning session
// and the single source of truth every analytics view reads from.
//
// One session has one logical writer (the grading step), but the HTTP layer
// may serve reads concurrently with an append, so the slice is guarded to
// keep Snapshot a consistent prefix of appends.
type EventLog struct {
	mu        sync.RWMutex
	studentID string
	startedAt time.Time
	events    []Event
	counters  Counters
}

func NewEventLog(studentID string) *EventLog {
	return &EventLog{
		studentID: studentID,
		startedAt: time.Now(),
	}
}

func (l *EventLog) StudentID() string {
	return l.studentID
}

func (l *EventLog) StartedAt() time.Time {
	return l.startedAt
}

// RecordAttempt appends one graded attempt and updates the counters.
// An empty or whitespace-only concept is refused; the log stays untouched.
func (l *EventLog) RecordAttempt(concept string, correct bool) error {
	if strings.TrimSpace(concept) == "" {
		return ErrEmptyConcept
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, Event{
		Timestamp: time.Now(),
		StudentID: l.studentID,
		Concept:   concept,
		Correct:   correct,
	})

	l.counters.Attempts++
	if correct {
		l.counters.Correct++
		l.counters.XP += XPPerCorrect
	}
	return nil
}

// Snapshot returns a stable point-in-time copy of the log in append order.
// Aggregations run against the copy, so a concurrent append can never
// produce a half-applied event in a reader.
func (l *EventLog) Snapshot() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	snap := make([]Event, len(l.events))
	copy(snap, l.events)
	return snap
}

// Counters returns the cached running totals.
func (l *EventLog) Counters() Counters {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.counters
}

func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
