package handlers

import (
	"errors"
	"net/http"

	"trivia/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizHandler struct {
	quizService *services.QuizService
	logger      *zap.Logger
}

func NewQuizHandler(quizService *services.QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		logger:      logger,
	}
}

// NextQuestion picks a random question not yet asked. When none is left the
// question is null, which clients take as the end of the quiz.
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logBindError(h.logger, "invalid quiz request", err)
		AbortWithError(c, http.StatusBadRequest)
		return
	}

	categoryID := int(*req.QuizCategory.ID)
	question, err := h.quizService.NextQuestion(c.Request.Context(), categoryID, *req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, services.ErrQuizExhausted) {
			c.JSON(http.StatusOK, gin.H{
				"success":  true,
				"question": nil,
			})
			return
		}
		h.logger.Error("failed to pick quiz question", zap.Int("category", categoryID), zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question.Format(),
	})
}
