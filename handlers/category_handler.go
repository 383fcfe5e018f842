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

type CategoryHandler struct {
	categoryService *services.CategoryService
	questionService *services.QuestionService
	pageSize        int
	logger          *zap.Logger
}

func NewCategoryHandler(
	categoryService *services.CategoryService,
	questionService *services.QuestionService,
	pageSize int,
	logger *zap.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		pageSize:        pageSize,
		logger:          logger,
	}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load categories", zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": models.NewCategoryMap(categories),
	})
}

// GetQuestionsByCategory pages through the questions of one category. Unlike
// the other listings an empty page is not an error.
func (h *CategoryHandler) GetQuestionsByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		AbortWithError(c, http.StatusNotFound)
		return
	}
	// well-formed but beyond any stored id
	if id > math.MaxInt64 {
		AbortWithError(c, http.StatusUnprocessableEntity)
		return
	}
	page, err := services.ParsePage(c.Query("page"))
	if err != nil {
		AbortWithError(c, http.StatusNotFound)
		return
	}

	ctx := c.Request.Context()
	category, err := h.categoryService.GetCategoryByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			AbortWithError(c, http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("failed to load category", zap.Uint64("category_id", id), zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError)
		return
	}

	questions, err := h.questionService.GetQuestionsByCategory(ctx, int(category.ID))
	if err != nil {
		h.logger.Error("failed to load category questions", zap.Uint64("category_id", id), zap.Error(err))
		AbortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        services.Paginate(models.FormatQuestions(questions), page, h.pageSize),
		"total_questions":  len(questions),
		"current_category": category.Type,
	})
}
