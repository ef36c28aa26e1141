package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/edulytics/edulytics-be/internal/analytics"
	"github.com/edulytics/edulytics-be/internal/delivery/http/entity"
	"github.com/edulytics/edulytics-be/internal/delivery/http/repository"
	internalEntity "github.com/edulytics/edulytics-be/internal/entity"
	"github.com/edulytics/edulytics-be/internal/grader"
	"github.com/edulytics/edulytics-be/internal/pkg/export"
	"github.com/edulytics/edulytics-be/internal/pkg/llm"
	"github.com/edulytics/edulytics-be/internal/pkg/mapper"
	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const maxConceptsPerGame = 5

type LearningUsecase interface {
	StartSession(ctx context.Context, req entity.StartSessionRequest) (*entity.StartSessionResponse, error)
	GenerateGame(ctx context.Context, sessionID string, req entity.GenerateGameRequest) (*entity.GenerateGameResponse, error)
	SubmitAnswer(ctx context.Context, sessionID string, req entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error)
	StudentAnalytics(ctx context.Context, sessionID string) (*entity.StudentAnalytics, error)
	TeacherAnalytics(ctx context.Context, sessionID string) (*entity.TeacherAnalytics, error)
	AdminAnalytics(ctx context.Context) (*entity.AdminAnalytics, error)
	StudentFeedback(ctx context.Context, sessionID string) (*entity.FeedbackResponse, error)
	ExportSessionCSV(ctx context.Context, sessionID string) ([]byte, error)
	AdminReport(ctx context.Context) (*entity.ReportDocument, error)
	ChatWithMentor(ctx context.Context, sessionID string, userMessage string) (*entity.ChatResponse, error)
	GetMentorHistory(ctx context.Context, sessionID string) ([]entity.ChatHistoryItem, error)
}

type LearningConfig struct {
	DB             *gorm.DB
	Groq           *llm.GroqClient
	PromptTemplate string
	Repository     repository.LearningRepository
	Registry       *analytics.Registry
	Config         *viper.Viper
	Log            *logrus.Logger
}

type learningUsecase struct {
	cfg LearningConfig
}

func NewLearningUsecase(cfg LearningConfig) LearningUsecase {
	if cfg.PromptTemplate == "" {
		cfg.PromptTemplate = defaultQuestionTemplate
	}
	if cfg.Registry == nil {
		cfg.Registry = analytics.NewRegistry()
	}
	return &learningUsecase{cfg: cfg}
}

func (u *learningUsecase) StartSession(_ context.Context, req entity.StartSessionRequest) (*entity.StartSessionResponse, error) {
	sessionID := uuid.NewString()
	studentID := uuid.NewString()[:8]

	if req.Grade == "" {
		req.Grade = string(entity.GradePrimary)
	}
	if req.Mode == "" {
		req.Mode = string(entity.ModeFun)
	}

	u.cfg.Registry.Register(sessionID, studentID)

	session := &internalEntity.LearningSession{
		SessionID: sessionID,
		StudentID: studentID,
		Grade:     req.Grade,
		Mode:      req.Mode,
		StartedAt: time.Now(),
	}
	if err := u.cfg.Repository.CreateSession(u.cfg.DB, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &entity.StartSessionResponse{
		SessionID: sessionID,
		StudentID: studentID,
	}, nil
}

func (u *learningUsecase) GenerateGame(ctx context.Context, sessionID string, req entity.GenerateGameRequest) (*entity.GenerateGameResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("learning content is empty")
	}
	if _, err := u.sessionLog(sessionID); err != nil {
		return nil, err
	}

	useAI := true
	if req.UseAI != nil {
		useAI = *req.UseAI
	}
	if u.cfg.Config != nil && u.cfg.Config.GetBool("llm.groq.disable_ai_prompt") {
		useAI = false
	}

	concepts, err := u.extractConcepts(ctx, req.Content)
	if err != nil {
		return nil, err
	}

	var questions []entity.GameQuestion
	if useAI {
		questions = u.generateQuestions(ctx, sessionID, concepts)
	} else {
		questions = u.questionsFromCache(concepts)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions could be generated for the given content")
	}

	return &entity.GenerateGameResponse{
		SessionID: sessionID,
		Concepts:  concepts,
		Questions: questions,
	}, nil
}

// extractConcepts asks the LLM for a short list of concept labels. Labels
// are trimmed but otherwise kept verbatim: no dedup, no case folding, so two
// textually different labels stay distinct concepts downstream.
func (u *learningUsecase) extractConcepts(ctx context.Context, content string) ([]string, error) {
	if u.cfg.Groq == nil {
		return nil, fmt.Errorf("groq client not configured")
	}

	prompt := fmt.Sprintf("Extract %d clear learning concepts from the following content. Return one concept per line, no numbering, no commentary:\n%s",
		maxConceptsPerGame, content)

	raw, err := u.cfg.Groq.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to extract concepts: %w", err)
	}

	concepts := parseConceptLines(raw)
	if len(concepts) == 0 {
		return nil, fmt.Errorf("no concepts found in content")
	}
	if len(concepts) > maxConceptsPerGame {
		concepts = concepts[:maxConceptsPerGame]
	}
	return concepts, nil
}

// generateQuestions fans out one LLM call per concept. Malformed blocks
// (missing the ANSWER: marker) are skipped, matching the source behavior.
func (u *learningUsecase) generateQuestions(ctx context.Context, sessionID string, concepts []string) []entity.GameQuestion {
	type result struct {
		question entity.GameQuestion
		index    int
		err      error
	}

	resultChan := make(chan result, len(concepts))

	for i, concept := range concepts {
		go func(index int, concept string) {
			q, err := u.generateQuestionFromAI(ctx, sessionID, concept)
			if err != nil {
				u.logf("question for concept %q: %v", concept, err)
			}
			resultChan <- result{question: q, index: index, err: err}
		}(i, concept)
	}

	ordered := make([]entity.GameQuestion, len(concepts))
	failed := make([]bool, len(concepts))
	for range concepts {
		r := <-resultChan
		ordered[r.index] = r.question
		failed[r.index] = r.err != nil
	}

	questions := make([]entity.GameQuestion, 0, len(concepts))
	for i := range ordered {
		if !failed[i] {
			questions = append(questions, ordered[i])
		}
	}
	return questions
}

func (u *learningUsecase) generateQuestionFromAI(ctx context.Context, sessionID, concept string) (entity.GameQuestion, error) {
	prompt := strings.ReplaceAll(u.cfg.PromptTemplate, "{{concept}}", concept)

	text, err := u.cfg.Groq.GenerateText(ctx, prompt)
	if err != nil {
		return entity.GameQuestion{}, err
	}

	body, answer, ok := splitQuestionAnswer(text)
	if !ok {
		return entity.GameQuestion{}, fmt.Errorf("AI output missing ANSWER marker")
	}

	questionID := generateQuestionID(concept, answer)
	q := entity.GameQuestion{
		QuestionID: questionID,
		Concept:    concept,
		Body:       body,
	}

	// Save asynchronously (non-blocking)
	go func() {
		if saveErr := u.saveQuestion(sessionID, concept, questionID, body, answer); saveErr != nil {
			u.logf("failed to save question to DB: %v", saveErr)
		}
	}()

	return q, nil
}

func (u *learningUsecase) saveQuestion(sessionID, concept, questionID, body, answer string) error {
	existing, _ := u.cfg.Repository.FindQuestionByQuestionID(u.cfg.DB, questionID)
	if existing != nil {
		// Already cached, just bump usage
		return u.cfg.Repository.IncrementUsageCount(u.cfg.DB, questionID)
	}

	question := &internalEntity.ConceptQuestion{
		QuestionID:  questionID,
		SessionID:   sessionID,
		Concept:     concept,
		Body:        body,
		Answer:      answer,
		GeneratedBy: "llm",
		UsageCount:  1,
	}
	return u.cfg.Repository.CreateQuestion(u.cfg.DB, question)
}

// questionsFromCache serves previously generated questions per concept when
// AI generation is disabled.
func (u *learningUsecase) questionsFromCache(concepts []string) []entity.GameQuestion {
	questions := make([]entity.GameQuestion, 0, len(concepts))
	for _, concept := range concepts {
		cached, err := u.cfg.Repository.FindRandomQuestionsByConcept(u.cfg.DB, concept, 1)
		if err != nil || len(cached) == 0 {
			continue
		}
		q := cached[0]
		questions = append(questions, entity.GameQuestion{
			QuestionID: q.QuestionID,
			Concept:    q.Concept,
			Body:       q.Body,
		})

		go func(questionID string) {
			if err := u.cfg.Repository.IncrementUsageCount(u.cfg.DB, questionID); err != nil {
				u.logf("failed to increment usage count for %s: %v", questionID, err)
			}
		}(q.QuestionID)
	}
	return questions
}

func (u *learningUsecase) SubmitAnswer(_ context.Context, sessionID string, req entity.SubmitAnswerRequest) (*entity.SubmitAnswerResponse, error) {
	log, err := u.sessionLog(sessionID)
	if err != nil {
		return nil, err
	}

	// Resubmission of the same question returns the stored verdict without
	// recording a second attempt.
	existing, err := u.cfg.Repository.FindEventBySessionAndQuestion(u.cfg.DB, sessionID, req.QuestionID)
	if err == nil && existing != nil {
		return &entity.SubmitAnswerResponse{
			IsCorrect:  existing.Correct,
			Concept:    existing.Concept,
			UserAnswer: req.Answer,
			QuestionID: req.QuestionID,
			SessionID:  sessionID,
			XP:         log.Counters().XP,
		}, nil
	}

	question, err := u.cfg.Repository.FindQuestionByQuestionID(u.cfg.DB, req.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("question not found: %w", err)
	}

	isCorrect := grader.Grade(question.Answer, req.Answer)

	if err := log.RecordAttempt(question.Concept, isCorrect); err != nil {
		return nil, err
	}

	// Write-through externalization of the freshly appended event.
	row := mapper.FromAnalyticsEvent(sessionID, req.QuestionID, analytics.Event{
		Timestamp: time.Now(),
		StudentID: log.StudentID(),
		Concept:   question.Concept,
		Correct:   isCorrect,
	})
	if err := u.cfg.Repository.CreateEvent(u.cfg.DB, row); err != nil {
		u.logf("failed to persist event for session %s: %v", sessionID, err)
	}

	return &entity.SubmitAnswerResponse{
		IsCorrect:  isCorrect,
		Concept:    question.Concept,
		UserAnswer: req.Answer,
		QuestionID: req.QuestionID,
		SessionID:  sessionID,
		XP:         log.Counters().XP,
	}, nil
}

func (u *learningUsecase) StudentAnalytics(_ context.Context, sessionID string) (*entity.StudentAnalytics, error) {
	snapshot, counters, err := u.sessionSnapshot(sessionID)
	if err != nil {
		return nil, err
	}

	return &entity.StudentAnalytics{
		SessionID:        sessionID,
		XP:               counters.XP,
		Attempts:         counters.Attempts,
		Correct:          counters.Correct,
		AccuracyPercent:  analytics.AccuracyPercent(snapshot),
		ConceptFrequency: analytics.ConceptFrequency(snapshot),
		Engagement:       analytics.EngagementSeries(snapshot),
	}, nil
}

func (u *learningUsecase) TeacherAnalytics(ctx context.Context, sessionID string) (*entity.TeacherAnalytics, error) {
	snapshot, _, err := u.sessionSnapshot(sessionID)
	if err != nil {
		return nil, err
	}

	insights := u.narrative(ctx, sessionID, "teacher", teacherInsightPrompt, snapshot, teacherInsightFallback)

	return &entity.TeacherAnalytics{
		SessionID:       sessionID,
		ConceptAccuracy: analytics.ConceptAccuracy(snapshot),
		Engagement:      analytics.EngagementSeries(snapshot),
		Insights:        insights,
	}, nil
}

func (u *learningUsecase) AdminAnalytics(ctx context.Context) (*entity.AdminAnalytics, error) {
	snapshot, err := u.platformSnapshot()
	if err != nil {
		return nil, err
	}

	totals := analytics.PlatformTotals(snapshot)
	insights := u.narrative(ctx, "platform", "admin", adminInsightPrompt, snapshot, adminInsightFallback)

	return &entity.AdminAnalytics{
		ActiveStudents: totals.ActiveStudents,
		TotalAttempts:  totals.TotalAttempts,
		Engagement:     analytics.EngagementSeries(snapshot),
		Insights:       insights,
	}, nil
}

func (u *learningUsecase) StudentFeedback(ctx context.Context, sessionID string) (*entity.FeedbackResponse, error) {
	snapshot, _, err := u.sessionSnapshot(sessionID)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, fmt.Errorf("no attempts recorded for session")
	}

	feedback := u.narrative(ctx, sessionID, "student", studentFeedbackPrompt, snapshot, studentFeedbackFallback)

	return &entity.FeedbackResponse{
		SessionID: sessionID,
		Feedback:  feedback,
	}, nil
}

func (u *learningUsecase) ExportSessionCSV(_ context.Context, sessionID string) ([]byte, error) {
	snapshot, _, err := u.sessionSnapshot(sessionID)
	if err != nil {
		return nil, err
	}
	return export.EventsCSV(snapshot)
}

func (u *learningUsecase) AdminReport(ctx context.Context) (*entity.ReportDocument, error) {
	adminView, err := u.AdminAnalytics(ctx)
	if err != nil {
		return nil, err
	}

	doc := export.NewDocument("School Analytics Report", adminView.Insights)
	return &entity.ReportDocument{
		Title: doc.Title,
		Lines: doc.Lines,
	}, nil
}

// narrative generates (and caches) an LLM narrative for one audience from a
// serialized snapshot. LLM failures fall back to static copy; they never
// become errors on the dashboard path.
func (u *learningUsecase) narrative(ctx context.Context, sessionID, audience, promptTemplate string, snapshot []analytics.Event, fallback string) string {
	if cached, err := u.cfg.Repository.FindInsight(u.cfg.DB, sessionID, audience); err == nil && cached != nil {
		return cached.Narrative
	}

	if u.cfg.Groq == nil {
		return fallback
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{data}}", summarizeSnapshot(snapshot))
	text, err := u.cfg.Groq.GenerateText(ctx, prompt)
	if err != nil {
		u.logf("%s narrative error: %v", audience, err)
		return fallback
	}

	cache := &internalEntity.InsightCache{
		SessionID: sessionID,
		Audience:  audience,
		Narrative: text,
	}
	if err := u.cfg.Repository.CreateOrUpdateInsight(u.cfg.DB, cache); err != nil {
		u.logf("failed to cache %s narrative: %v", audience, err)
	}

	return text
}

// ChatWithMentor handles the mentor conversation grounded in the session's
// analytics snapshot.
func (u *learningUsecase) ChatWithMentor(ctx context.Context, sessionID string, userMessage string) (*entity.ChatResponse, error) {
	if u.cfg.Groq == nil {
		return nil, fmt.Errorf("groq client not configured")
	}

	snapshot, counters, err := u.sessionSnapshot(sessionID)
	if err != nil {
		return nil, err
	}

	systemContext := fmt.Sprintf(`You are a supportive learning mentor for a student on a gamified learning platform.

Session context:
- XP: %d
- Attempts: %d
- Correct: %d
- Accuracy: %.1f%%
- Per-concept accuracy: %s

Your task:
1. Encourage the student and answer questions in simple language
2. Point at the concepts with the lowest accuracy when asked what to practice
3. Never hand out answers to open questions, give hints instead`,
		counters.XP,
		counters.Attempts,
		counters.Correct,
		analytics.AccuracyPercent(snapshot),
		formatConceptAccuracy(analytics.ConceptAccuracy(snapshot)),
	)

	history, err := u.cfg.Repository.FindMentorMessagesBySessionID(u.cfg.DB, sessionID, 10)
	if err != nil {
		history = []internalEntity.MentorMessage{} // Continue with empty history
	}

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemContext,
		},
	}
	for _, msg := range history {
		role := openai.ChatMessageRoleAssistant
		if msg.Role == "user" {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Message,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	reply, err := u.cfg.Groq.GenerateChatResponse(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mentor response: %w", err)
	}

	userMsg := &internalEntity.MentorMessage{
		SessionID: sessionID,
		Role:      "user",
		Message:   userMessage,
	}
	if err := u.cfg.Repository.CreateMentorMessage(u.cfg.DB, userMsg); err != nil {
		u.logf("failed to save user message: %v", err)
	}

	botMsg := &internalEntity.MentorMessage{
		SessionID: sessionID,
		Role:      "assistant",
		Message:   reply,
	}
	if err := u.cfg.Repository.CreateMentorMessage(u.cfg.DB, botMsg); err != nil {
		u.logf("failed to save mentor message: %v", err)
	}

	return &entity.ChatResponse{
		Response:  reply,
		SessionID: sessionID,
	}, nil
}

func (u *learningUsecase) GetMentorHistory(_ context.Context, sessionID string) ([]entity.ChatHistoryItem, error) {
	messages, err := u.cfg.Repository.FindMentorMessagesBySessionID(u.cfg.DB, sessionID, 50)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}

	history := make([]entity.ChatHistoryItem, 0, len(messages))
	for _, msg := range messages {
		history = append(history, entity.ChatHistoryItem{
			Role:      msg.Role,
			Message:   msg.Message,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		})
	}
	return history, nil
}

// sessionLog returns the live log for a session owned by this process.
func (u *learningUsecase) sessionLog(sessionID string) (*analytics.EventLog, error) {
	if log := u.cfg.Registry.Get(sessionID); log != nil {
		return log, nil
	}
	return nil, fmt.Errorf("session not found: %s", sessionID)
}

// sessionSnapshot prefers the in-memory log; for sessions not owned by this
// process (restart, other replica) it rebuilds the snapshot from the
// persisted rows. Counters are recomputed from the snapshot in that case.
func (u *learningUsecase) sessionSnapshot(sessionID string) ([]analytics.Event, analytics.Counters, error) {
	if log := u.cfg.Registry.Get(sessionID); log != nil {
		return log.Snapshot(), log.Counters(), nil
	}

	rows, err := u.cfg.Repository.FindEventsBySessionID(u.cfg.DB, sessionID)
	if err != nil {
		return nil, analytics.Counters{}, fmt.Errorf("failed to load session events: %w", err)
	}
	if len(rows) == 0 {
		return nil, analytics.Counters{}, fmt.Errorf("session not found: %s", sessionID)
	}

	snapshot := mapper.ToAnalyticsSnapshot(rows)
	counters := analytics.Counters{Attempts: len(snapshot)}
	for _, e := range snapshot {
		if e.Correct {
			counters.Correct++
			counters.XP += analytics.XPPerCorrect
		}
	}
	return snapshot, counters, nil
}

// platformSnapshot loads every persisted event across sessions for the
// admin view.
func (u *learningUsecase) platformSnapshot() ([]analytics.Event, error) {
	rows, err := u.cfg.Repository.FindAllEvents(u.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to load platform events: %w", err)
	}
	return mapper.ToAnalyticsSnapshot(rows), nil
}

func (u *learningUsecase) logf(format string, args ...any) {
	if u.cfg.Log != nil {
		u.cfg.Log.Warnf(format, args...)
	}
}

// parseConceptLines splits raw LLM output into concept labels: one per
// line, bullets and numbering trimmed, blank lines dropped. Nothing else is
// normalized.
func parseConceptLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	concepts := make([]string, 0, len(lines))
	for _, line := range lines {
		c := strings.TrimSpace(line)
		c = strings.TrimLeft(c, "-•*0123456789. )")
		c = strings.TrimSpace(c)
		if c != "" {
			concepts = append(concepts, c)
		}
	}
	return concepts
}

// splitQuestionAnswer splits a generated block on its ANSWER: marker.
func splitQuestionAnswer(text string) (body, answer string, ok bool) {
	idx := strings.LastIndex(text, "ANSWER:")
	if idx < 0 {
		return "", "", false
	}
	body = strings.TrimSpace(text[:idx])
	answer = strings.TrimSpace(text[idx+len("ANSWER:"):])
	if body == "" || answer == "" {
		return "", "", false
	}
	return body, answer, true
}

func generateQuestionID(concept, answer string) string {
	sum := sha256.Sum256([]byte(concept + "|" + answer))
	return "q-" + hex.EncodeToString(sum[:8])
}

// summarizeSnapshot serializes events for LLM prompts. The narrative text
// coming back is opaque output, never parsed.
func summarizeSnapshot(snapshot []analytics.Event) string {
	summary := struct {
		Totals          analytics.Totals   `json:"totals"`
		AccuracyPercent float64            `json:"accuracy_percent"`
		ConceptAccuracy map[string]float64 `json:"concept_accuracy"`
		ConceptAttempts map[string]int     `json:"concept_attempts"`
	}{
		Totals:          analytics.PlatformTotals(snapshot),
		AccuracyPercent: analytics.AccuracyPercent(snapshot),
		ConceptAccuracy: analytics.ConceptAccuracy(snapshot),
		ConceptAttempts: analytics.ConceptFrequency(snapshot),
	}

	data, err := json.Marshal(summary)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func formatConceptAccuracy(acc map[string]float64) string {
	if len(acc) == 0 {
		return "no attempts yet"
	}
	parts := make([]string, 0, len(acc))
	for concept, pct := range acc {
		parts = append(parts, fmt.Sprintf("%s %.1f%%", concept, pct))
	}
	return strings.Join(parts, ", ")
}

const defaultQuestionTemplate = `Create ONE multiple-choice question to test understanding of:
{{concept}}

Rules:
- Four options labelled A) to D)
- Exactly one option is correct
- Keep the wording short and clear

End with:
ANSWER: <correct option>`

const teacherInsightPrompt = `Provide teaching insights and recommendations from this class analytics data.
Focus on which concepts students struggle with and what to reteach first.

Data:
{{data}}`

const teacherInsightFallback = "Insights are unavailable right now. Review the per-concept accuracy chart and focus on the weakest concepts."

const adminInsightPrompt = `Provide school-level insights, curriculum gaps, and recommendations from this platform analytics data.

Data:
{{data}}`

const adminInsightFallback = "Insights are unavailable right now. Platform totals and engagement are shown above."

const studentFeedbackPrompt = `Give supportive learning feedback based on this student data.
Be encouraging, name the strongest and weakest concepts, and suggest what to practice next.

Data:
{{data}}`

const studentFeedbackFallback = "Great effort so far. Keep practicing the concepts you missed and your accuracy will climb."
