package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"trivia/models"
	"trivia/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	categoryService *services.CategoryService
	pageSize        int
	logger          *zap.Logger
}

func NewQuestionHandler(
	questionService *services.QuestionService,
	categoryService *services.CategoryService,
	pageSize int,
	logger *zap.Logger,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		pageSize:        pageSize,
		logger:          logger,
	}
}

// GetQuestions returns one page of all questions along with every category.
// A page past the end is a 404.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	page, err := services.ParsePage(c.Query("page"))
	if err != nil {
		AbortWithError(c, http.StatusNotFound)
		return
	}

	ctx := c.Request.Context()
	questions, err := h.questionService.GetAllQuestions(ctx)
	if err != nil {
		h.logger.Error("failed to load questions", zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError)
		return
	}
	categories, err := h.categoryService.GetAllCategories(ctx)
	if err != nil {
		h.logger.Error("failed to load categories", zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError)
		return
	}

	current := services.Paginate(models.FormatQuestions(questions), page, h.pageSize)
	if len(current) == 0 {
		AbortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"total_questions": len(questions),
		"categories":      models.NewCategoryMap(categories),
		"questions":       current,
	})
}

// DeleteQuestion removes a question. A malformed id is a 404; an unknown id
// or any storage fault is a 422.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		AbortWithError(c, http.StatusNotFound)
		return
	}
	if id > math.MaxInt64 {
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	if err := h.questionService.DeleteQuestion(c.Request.Context(), uint(id)); err != nil {
		if !errors.Is(err, services.ErrQuestionNotFound) {
			h.logger.Error("failed to delete question", zap.Uint64("question_id", id), zap.Error(err))
		}
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Question successfully deleted",
	})
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logBindError(h.logger, "invalid create question request", err)
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	input := services.CreateQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: int(*req.Difficulty),
		Category:   int(*req.Category),
	}
	if _, err := h.questionService.CreateQuestion(c.Request.Context(), input); err != nil {
		h.logger.Error("failed to create question", zap.Error(err))
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Question successfully created!",
	})
}

// SearchQuestions reports every failure past input validation as a 404.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	page, err := services.ParsePage(c.Query("page"))
	if err != nil {
		AbortWithError(c, http.StatusNotFound)
		return
	}

	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logBindError(h.logger, "invalid search request", err)
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}
	if req.SearchTerm == "" {
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	ctx := c.Request.Context()
	questions, err := h.questionService.SearchQuestions(ctx, req.SearchTerm)
	if err != nil {
		if !errors.Is(err, services.ErrNoMatches) {
			h.logger.Error("failed to search questions", zap.Error(err))
		}
		AbortWithError(c, http.StatusNotFound)
		return
	}
	total, err := h.questionService.CountQuestions(ctx)
	if err != nil {
		h.logger.Error("failed to count questions", zap.Error(err))
		AbortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       services.Paginate(models.FormatQuestions(questions), page, h.pageSize),
		"total_questions": total,
	})
}
