package services

import (
	"testing"

	"trivia/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would otherwise get its own database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Question{}))
	return db
}

func seedQuestions(t *testing.T, db *gorm.DB, questions ...models.Question) []models.Question {
	t.Helper()
	require.NoError(t, db.Create(&questions).Error)
	return questions
}

type recordedEvent struct {
	eventType string
	payload   interface{}
}

type eventRecorder struct {
	events []recordedEvent
}

func (r *eventRecorder) BroadcastEvent(eventType string, payload interface{}) {
	r.events = append(r.events, recordedEvent{eventType: eventType, payload: payload})
}

var testLogger = zap.NewNop()
