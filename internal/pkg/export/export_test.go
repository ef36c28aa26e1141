package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/edulytics/edulytics-be/internal/analytics"
	"github.com/edulytics/edulytics-be/internal/pkg/export"
)

func TestEventsCSV(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	snapshot := []analytics.Event{
		{Timestamp: ts, StudentID: "s1", Concept: "fractions", Correct: true},
		{Timestamp: ts.Add(time.Minute), StudentID: "s1", Concept: "algebra, advanced", Correct: false},
	}

	data, err := export.EventsCSV(snapshot)
	if err != nil {
		t.Fatalf("EventsCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	header := records[0]
	if header[0] != "timestamp" || header[1] != "concept" || header[2] != "correct" {
		t.Errorf("unexpected header: %v", header)
	}
	if records[1][1] != "fractions" || records[1][2] != "true" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	// Commas inside a concept label must survive the round trip.
	if records[2][1] != "algebra, advanced" || records[2][2] != "false" {
		t.Errorf("unexpected second row: %v", records[2])
	}
	if records[1][0] != "2025-03-14T09:30:00Z" {
		t.Errorf("unexpected timestamp format: %q", records[1][0])
	}
}

func TestEventsCSV_EmptySnapshot(t *testing.T) {
	data, err := export.EventsCSV(nil)
	if err != nil {
		t.Fatalf("EventsCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("empty snapshot should still emit the header, got %d records", len(records))
	}
}

func TestNewDocument(t *testing.T) {
	doc := export.NewDocument("School Analytics Report", "First insight.\n\n  Second insight.  \n")

	if doc.Title != "School Analytics Report" {
		t.Errorf("unexpected title: %q", doc.Title)
	}
	want := []string{"First insight.", "Second insight."}
	if len(doc.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(doc.Lines), doc.Lines)
	}
	for i := range want {
		if doc.Lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], doc.Lines[i])
		}
	}
}
