package services

import (
	"context"
	"errors"
	"math/rand"

	"trivia/metrics"
	"trivia/models"

	"go.uber.org/zap"
)

// AllCategories selects the quiz pool across every category.
const AllCategories = 0

// ErrQuizExhausted means every question in the pool was already asked.
var ErrQuizExhausted = errors.New("no unasked questions left in the quiz pool")

type QuizService struct {
	questions *QuestionService
	intn      func(n int) int
	logger    *zap.Logger
}

func NewQuizService(questions *QuestionService, logger *zap.Logger) *QuizService {
	return &QuizService{
		questions: questions,
		intn:      rand.Intn,
		logger:    logger,
	}
}

// NextQuestion draws a random question from the pool of categoryID that is
// not in previous. The pool is every question when categoryID is
// AllCategories.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []int) (*models.Question, error) {
	var (
		pool []models.Question
		err  error
	)
	if categoryID == AllCategories {
		pool, err = s.questions.GetAllQuestions(ctx)
	} else {
		pool, err = s.questions.GetQuestionsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	question, ok := s.pick(pool, previous)
	if !ok {
		metrics.QuizDraws.WithLabelValues("exhausted").Inc()
		s.logger.Debug("quiz pool exhausted",
			zap.Int("category", categoryID),
			zap.Int("pool_size", len(pool)),
			zap.Int("previous", len(previous)))
		return nil, ErrQuizExhausted
	}

	metrics.QuizDraws.WithLabelValues("picked").Inc()
	return question, nil
}

// pick draws candidates uniformly at random without replacement until one
// is not in previous. It makes at most len(pool) draws.
func (s *QuizService) pick(pool []models.Question, previous []int) (*models.Question, bool) {
	asked := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}

	candidates := make([]int, len(pool))
	for i := range candidates {
		candidates[i] = i
	}

	for remaining := len(candidates); remaining > 0; remaining-- {
		j := s.intn(remaining)
		q := pool[candidates[j]]
		if _, seen := asked[int(q.ID)]; !seen {
			return &q, true
		}
		candidates[j] = candidates[remaining-1]
	}
	return nil, false
}
