package entity

import "github.com/edulytics/edulytics-be/internal/analytics"

type Grade string

const (
	GradePrimary   Grade = "primary"
	GradeSecondary Grade = "secondary"
	GradeHigher    Grade = "higher"
)

type Mode string

const (
	ModeFun     Mode = "fun"
	ModeExam    Mode = "exam"
	ModeMastery Mode = "mastery"
)

type StartSessionRequest struct {
	Grade string `json:"grade" validate:"omitempty,oneof=primary secondary higher"`
	Mode  string `json:"mode" validate:"omitempty,oneof=fun exam mastery"`
}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	StudentID string `json:"student_id"`
}

// Request untuk generate game dari konten belajar
type GenerateGameRequest struct {
	Content string `json:"content" validate:"required"`
	UseAI   *bool  `json:"use_ai,omitempty"`
}

type GameQuestion struct {
	QuestionID string `json:"question_id"`
	Concept    string `json:"concept"`
	Body       string `json:"body"`
	Answer     string `json:"answer,omitempty"`
}

type GenerateGameResponse struct {
	SessionID string         `json:"session_id"`
	Concepts  []string       `json:"concepts"`
	Questions []GameQuestion `json:"questions"`
}

// Request untuk submit jawaban
type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

type SubmitAnswerResponse struct {
	IsCorrect  bool   `json:"is_correct"`
	Concept    string `json:"concept"`
	UserAnswer string `json:"user_answer"`
	QuestionID string `json:"question_id"`
	SessionID  string `json:"session_id"`
	XP         int    `json:"xp"`
}

type ConceptStat struct {
	Concept  string  `json:"concept"`
	Attempts int     `json:"attempts"`
	Accuracy float64 `json:"accuracy,omitempty"`
}

// StudentAnalytics - "My Analytics" tab untuk student view
type StudentAnalytics struct {
	SessionID        string                      `json:"session_id"`
	XP               int                         `json:"xp"`
	Attempts         int                         `json:"attempts"`
	Correct          int                         `json:"correct"`
	AccuracyPercent  float64                     `json:"accuracy_percent"`
	ConceptFrequency map[string]int              `json:"concept_frequency"`
	Engagement       []analytics.EngagementPoint `json:"engagement"`
}

// TeacherAnalytics - dashboard guru: akurasi per konsep + engagement
type TeacherAnalytics struct {
	SessionID       string                      `json:"session_id"`
	ConceptAccuracy map[string]float64          `json:"concept_accuracy"`
	Engagement      []analytics.EngagementPoint `json:"engagement"`
	Insights        string                      `json:"insights"`
}

// AdminAnalytics - dashboard sekolah: total platform + insight kurikulum
type AdminAnalytics struct {
	ActiveStudents int                         `json:"active_students"`
	TotalAttempts  int                         `json:"total_attempts"`
	Engagement     []analytics.EngagementPoint `json:"engagement"`
	Insights       string                      `json:"insights"`
}

type FeedbackResponse struct {
	SessionID string `json:"session_id"`
	Feedback  string `json:"feedback"`
}

// ReportDocument - bentuk siap-PDF: judul + baris isi. Rendering PDF
// dilakukan presentation layer.
type ReportDocument struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type ChatHistoryItem struct {
	Role      string `json:"role"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}
