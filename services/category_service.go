package services

import (
	"context"
	"errors"
	"fmt"

	"trivia/metrics"
	"trivia/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService struct {
	db     *gorm.DB
	cache  CategoryCache
	logger *zap.Logger
}

// NewCategoryService returns a service reading categories from db. cache may
// be nil, in which case every call goes to the database.
func NewCategoryService(db *gorm.DB, cache CategoryCache, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// GetAllCategories returns every category ordered by id.
func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	if s.cache != nil {
		categories, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.CategoryCacheLookups.WithLabelValues("error").Inc()
			s.logger.Warn("category cache read failed", zap.Error(err))
		case ok:
			metrics.CategoryCacheLookups.WithLabelValues("hit").Inc()
			return categories, nil
		default:
			metrics.CategoryCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %d: %w", id, ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return &category, nil
}
