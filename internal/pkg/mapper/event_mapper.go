package mapper

import (
	"github.com/edulytics/edulytics-be/internal/analytics"
	dbEntity "github.com/edulytics/edulytics-be/internal/entity"
)

// ToAnalyticsEvent - Convert DB row to the in-memory event shape
func ToAnalyticsEvent(row *dbEntity.LearningEvent) analytics.Event {
	return analytics.Event{
		Timestamp: row.GradedAt,
		StudentID: row.StudentID,
		Concept:   row.Concept,
		Correct:   row.Correct,
	}
}

// ToAnalyticsSnapshot - Convert persisted rows to a snapshot in stored order
func ToAnalyticsSnapshot(rows []dbEntity.LearningEvent) []analytics.Event {
	snapshot := make([]analytics.Event, 0, len(rows))
	for i := range rows {
		snapshot = append(snapshot, ToAnalyticsEvent(&rows[i]))
	}
	return snapshot
}

// FromAnalyticsEvent - Convert an in-memory event to its durable row
func FromAnalyticsEvent(sessionID, questionID string, e analytics.Event) *dbEntity.LearningEvent {
	return &dbEntity.LearningEvent{
		SessionID:  sessionID,
		StudentID:  e.StudentID,
		QuestionID: questionID,
		Concept:    e.Concept,
		Correct:    e.Correct,
		GradedAt:   e.Timestamp,
	}
}
