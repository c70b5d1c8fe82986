package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/trivia-backend/internal/data/repos/trivia"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

type CategoryService interface {
	// TypesByID maps every category id to its type.
	TypesByID(ctx context.Context, tx *gorm.DB) (map[uint]string, error)
}

type categoryService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo trivia.CategoryRepo
}

func NewCategoryService(db *gorm.DB, baseLog *logger.Logger, categoryRepo trivia.CategoryRepo) CategoryService {
	return &categoryService{
		db:           db,
		log:          baseLog.With("service", "CategoryService"),
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) TypesByID(ctx context.Context, tx *gorm.DB) (map[uint]string, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	categories, err := s.categoryRepo.List(ctx, transaction)
	if err != nil {
		s.log.Warn("TypesByID: load categories failed", "error", err)
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make(map[uint]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out, nil
}
