package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trivia/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrNoMatches        = errors.New("no questions match the search term")
	ErrEmptySearchTerm  = errors.New("search term is empty")
)

const (
	EventQuestionCreated = "question_created"
	EventQuestionDeleted = "question_deleted"
)

// EventPublisher receives notifications about question changes.
type EventPublisher interface {
	BroadcastEvent(eventType string, payload interface{})
}

type QuestionService struct {
	db     *gorm.DB
	events EventPublisher
	logger *zap.Logger
}

func NewQuestionService(db *gorm.DB, events EventPublisher, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		db:     db,
		events: events,
		logger: logger,
	}
}

type CreateQuestionInput struct {
	Question   string
	Answer     string
	Difficulty int
	Category   int
}

// GetAllQuestions returns every question ordered by id.
func (s *QuestionService) GetAllQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) CountQuestions(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

func (s *QuestionService) GetQuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}
	return questions, nil
}

// SearchQuestions does a case-insensitive substring match of term against
// the question text. Wildcard characters in term match literally.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("LOWER(question) LIKE ? ESCAPE '\\'", pattern).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoMatches
	}
	return questions, nil
}

func (s *QuestionService) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*models.Question, error) {
	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Difficulty: input.Difficulty,
		Category:   input.Category,
	}

	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.logger.Info("question created",
		zap.Uint("question_id", question.ID),
		zap.Int("category", question.Category))
	s.publish(EventQuestionCreated, question.Format())
	return &question, nil
}

// DeleteQuestion permanently removes the question with the given id.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	var question models.Question
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("question %d: %w", id, ErrQuestionNotFound)
		}
		return fmt.Errorf("failed to get question %d: %w", id, err)
	}

	result := s.db.WithContext(ctx).Delete(&question)
	if result.Error != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("question %d: %w", id, ErrQuestionNotFound)
	}

	s.logger.Info("question deleted", zap.Uint("question_id", id))
	s.publish(EventQuestionDeleted, map[string]uint{"id": id})
	return nil
}

func (s *QuestionService) publish(eventType string, payload interface{}) {
	if s.events != nil {
		s.events.BroadcastEvent(eventType, payload)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
