package database

import (
	"github.com/edulytics/edulytics-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.LearningSession{},
		&entity.LearningEvent{},
		&entity.ConceptQuestion{},
		&entity.InsightCache{},
		&entity.MentorMessage{},
	)
	return err
}
