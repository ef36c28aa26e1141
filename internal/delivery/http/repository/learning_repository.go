package repository

import (
	"github.com/edulytics/edulytics-be/internal/entity"
	"gorm.io/gorm"
)

type (
	LearningRepository interface {
		// Session operations
		CreateSession(db *gorm.DB, session *entity.LearningSession) error
		FindSessionBySessionID(db *gorm.DB, sessionID string) (*entity.LearningSession, error)

		// Event operations
		CreateEvent(db *gorm.DB, event *entity.LearningEvent) error
		FindEventsBySessionID(db *gorm.DB, sessionID string) ([]entity.LearningEvent, error)
		FindAllEvents(db *gorm.DB) ([]entity.LearningEvent, error)
		FindEventBySessionAndQuestion(db *gorm.DB, sessionID, questionID string) (*entity.LearningEvent, error)

		// Generated question operations
		CreateQuestion(db *gorm.DB, question *entity.ConceptQuestion) error
		FindQuestionByQuestionID(db *gorm.DB, questionID string) (*entity.ConceptQuestion, error)
		FindRandomQuestionsByConcept(db *gorm.DB, concept string, limit int) ([]entity.ConceptQuestion, error)
		IncrementUsageCount(db *gorm.DB, questionID string) error

		// Insight cache operations
		CreateOrUpdateInsight(db *gorm.DB, cache *entity.InsightCache) error
		FindInsight(db *gorm.DB, sessionID, audience string) (*entity.InsightCache, error)

		// Mentor chat operations
		CreateMentorMessage(db *gorm.DB, message *entity.MentorMessage) error
		FindMentorMessagesBySessionID(db *gorm.DB, sessionID string, limit int) ([]entity.MentorMessage, error)
	}

	learningRepository struct {
		db *gorm.DB
	}
)

func NewLearningRepository(db *gorm.DB) LearningRepository {
	return &learningRepository{db: db}
}

// Session operations
func (r *learningRepository) CreateSession(db *gorm.DB, session *entity.LearningSession) error {
	if db == nil {
		db = r.db
	}
	return db.Create(session).Error
}

func (r *learningRepository) FindSessionBySessionID(db *gorm.DB, sessionID string) (*entity.LearningSession, error) {
	if db == nil {
		db = r.db
	}
	var session entity.LearningSession
	err := db.Where("session_id = ?", sessionID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Event operations
func (r *learningRepository) CreateEvent(db *gorm.DB, event *entity.LearningEvent) error {
	if db == nil {
		db = r.db
	}
	return db.Create(event).Error
}

func (r *learningRepository) FindEventsBySessionID(db *gorm.DB, sessionID string) ([]entity.LearningEvent, error) {
	if db == nil {
		db = r.db
	}
	var events []entity.LearningEvent
	err := db.Where("session_id = ?", sessionID).Order("id ASC").Find(&events).Error
	return events, err
}

func (r *learningRepository) FindAllEvents(db *gorm.DB) ([]entity.LearningEvent, error) {
	if db == nil {
		db = r.db
	}
	var events []entity.LearningEvent
	err := db.Order("id ASC").Find(&events).Error
	return events, err
}

func (r *learningRepository) FindEventBySessionAndQuestion(db *gorm.DB, sessionID, questionID string) (*entity.LearningEvent, error) {
	if db == nil {
		db = r.db
	}
	var event entity.LearningEvent
	err := db.Where("session_id = ? AND question_id = ?", sessionID, questionID).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Generated question operations
func (r *learningRepository) CreateQuestion(db *gorm.DB, question *entity.ConceptQuestion) error {
	if db == nil {
		db = r.db
	}
	return db.Create(question).Error
}

func (r *learningRepository) FindQuestionByQuestionID(db *gorm.DB, questionID string) (*entity.ConceptQuestion, error) {
	if db == nil {
		db = r.db
	}
	var question entity.ConceptQuestion
	err := db.Where("question_id = ?", questionID).First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *learningRepository) FindRandomQuestionsByConcept(db *gorm.DB, concept string, limit int) ([]entity.ConceptQuestion, error) {
	if db == nil {
		db = r.db
	}
	var questions []entity.ConceptQuestion
	err := db.Where("concept = ?", concept).Order("RANDOM()").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *learningRepository) IncrementUsageCount(db *gorm.DB, questionID string) error {
	if db == nil {
		db = r.db
	}
	return db.Model(&entity.ConceptQuestion{}).
		Where("question_id = ?", questionID).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error
}

// Insight cache operations
func (r *learningRepository) CreateOrUpdateInsight(db *gorm.DB, cache *entity.InsightCache) error {
	if db == nil {
		db = r.db
	}
	// Upsert: update if exists, create if not
	return db.Where("session_id = ? AND audience = ?", cache.SessionID, cache.Audience).
		Assign(cache).FirstOrCreate(cache).Error
}

func (r *learningRepository) FindInsight(db *gorm.DB, sessionID, audience string) (*entity.InsightCache, error) {
	if db == nil {
		db = r.db
	}
	var cache entity.InsightCache
	err := db.Where("session_id = ? AND audience = ?", sessionID, audience).First(&cache).Error
	if err != nil {
		return nil, err
	}
	return &cache, nil
}

// Mentor chat operations
func (r *learningRepository) CreateMentorMessage(db *gorm.DB, message *entity.MentorMessage) error {
	if db == nil {
		db = r.db
	}
	return db.Create(message).Error
}

func (r *learningRepository) FindMentorMessagesBySessionID(db *gorm.DB, sessionID string, limit int) ([]entity.MentorMessage, error) {
	if db == nil {
		db = r.db
	}
	var messages []entity.MentorMessage
	query := db.Where("session_id = ?", sessionID).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&messages).Error
	return messages, err
}
