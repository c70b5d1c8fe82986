package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/trivia-backend/internal/domain"
)

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, categoryType string) *types.Category {
	tb.Helper()
	c := &types.Category{Type: categoryType}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

// SeedQuestion inserts a question; a nil category leaves category_id NULL.
func SeedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, text, answer string, difficulty int, category *types.Category) *types.Question {
	tb.Helper()
	q := &types.Question{
		Question:   PtrString(text),
		Answer:     PtrString(answer),
		Difficulty: PtrInt(difficulty),
	}
	if category != nil {
		q.CategoryID = PtrUint(category.ID)
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

func CountQuestions(tb testing.TB, tx *gorm.DB) int64 {
	tb.Helper()
	var n int64
	if err := tx.Model(&types.Question{}).Count(&n).Error; err != nil {
		tb.Fatalf("count questions: %v", err)
	}
	return n
}

func PtrString(v string) *string { return &v }

func PtrInt(v int) *int { return &v }

func PtrUint(v uint) *uint { return &v }
