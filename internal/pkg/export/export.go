package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/edulytics/edulytics-be/internal/analytics"
)

// EventsCSV renders a snapshot as CSV: one row per event, columns
// timestamp,concept,correct. Timestamps are RFC3339.
func EventsCSV(snapshot []analytics.Event) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"timestamp", "concept", "correct"}); err != nil {
		return nil, err
	}
	for _, e := range snapshot {
		record := []string{
			e.Timestamp.Format(time.RFC3339),
			e.Concept,
			strconv.FormatBool(e.Correct),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Document is a title plus body lines, the shape the presentation layer
// feeds into its PDF renderer.
type Document struct {
	Title string
	Lines []string
}

// NewDocument splits free-text narrative into lines, dropping blank ones.
func NewDocument(title, body string) Document {
	raw := strings.Split(body, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return Document{Title: title, Lines: lines}
}
