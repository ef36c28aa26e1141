package entity

import (
	"time"

	"gorm.io/gorm"
)

// LearningSession - one interactive learning session owned by a student
type LearningSession struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SessionID string         `gorm:"uniqueIndex;size:100;not null" json:"session_id"`
	StudentID string         `gorm:"size:100;not null;index" json:"student_id"`
	Grade     string         `gorm:"size:50" json:"grade"` // primary, secondary, higher
	Mode      string         `gorm:"size:50" json:"mode"`  // fun, exam, mastery
	StartedAt time.Time      `gorm:"autoCreateTime" json:"started_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LearningSession) TableName() string {
	return "learning_sessions"
}

// LearningEvent - durable copy of one graded attempt. The in-memory event
// log stays the source of truth for the owning session; rows here feed the
// cross-session admin view and survive restarts.
type LearningEvent struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	SessionID  string         `gorm:"size:100;not null;index" json:"session_id"`
	StudentID  string         `gorm:"size:100;not null;index" json:"student_id"`
	QuestionID string         `gorm:"size:100;index" json:"question_id"`
	Concept    string         `gorm:"size:255;not null" json:"concept"` // stored verbatim, never normalized
	Correct    bool           `gorm:"not null" json:"correct"`
	GradedAt   time.Time      `gorm:"not null;index" json:"graded_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LearningEvent) TableName() string {
	return "learning_events"
}

// ConceptQuestion - LLM-generated question cache, one row per generated
// question, usage-counted so cached questions can be served without an
// API call.
type ConceptQuestion struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	QuestionID  string         `gorm:"uniqueIndex;size:100;not null" json:"question_id"` // hash unique
	SessionID   string         `gorm:"size:100;index" json:"session_id"`
	Concept     string         `gorm:"size:255;not null;index" json:"concept"`
	Body        string         `gorm:"type:text;not null" json:"body"`          // question text incl. options
	Answer      string         `gorm:"size:255;not null" json:"answer"`         // expected answer string
	GeneratedBy string         `gorm:"size:20;default:llm" json:"generated_by"` // llm, cache
	UsageCount  int            `gorm:"default:0" json:"usage_count"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ConceptQuestion) TableName() string {
	return "concept_questions"
}

// InsightCache - cached LLM narrative per session and audience so repeated
// dashboard renders don't re-call the model.
type InsightCache struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SessionID string         `gorm:"size:100;not null;index:idx_insight_scope,unique" json:"session_id"`
	Audience  string         `gorm:"size:20;not null;index:idx_insight_scope,unique" json:"audience"` // student, teacher, admin
	Narrative string         `gorm:"type:text" json:"narrative"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (InsightCache) TableName() string {
	return "insight_caches"
}

// MentorMessage - history of the mentor chat per session
type MentorMessage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SessionID string         `gorm:"size:100;not null;index" json:"session_id"`
	Role      string         `gorm:"size:20;not null" json:"role"` // user, assistant
	Message   string         `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (MentorMessage) TableName() string {
	return "mentor_messages"
}
