package services

import (
	"context"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/yungbote/trivia-backend/internal/data/repos/trivia"
	types "github.com/yungbote/trivia-backend/internal/domain"
	"github.com/yungbote/trivia-backend/internal/platform/apierr"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

const QuestionsPerPage = 10

type QuestionPage struct {
	Questions      []*types.QuestionWithCategory
	TotalQuestions int64
	CategoryTypes  []string
}

type NewQuestion struct {
	Question     *string
	Answer       *string
	Difficulty   *int
	CategoryType *string
}

// CreateResult.Category is nil when the requested category does not exist;
// nothing is inserted in that case.
type CreateResult struct {
	Question *types.Question
	Category *types.Category
}

type QuestionService interface {
	ListPage(ctx context.Context, tx *gorm.DB, page int) (*QuestionPage, error)
	Create(ctx context.Context, tx *gorm.DB, in NewQuestion) (*CreateResult, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	Search(ctx context.Context, tx *gorm.DB, term string) ([]*types.Question, error)
	ListByCategory(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.Question, error)
}

type questionService struct {
	db           *gorm.DB
	log          *logger.Logger
	questionRepo trivia.QuestionRepo
	categoryRepo trivia.CategoryRepo
}

func NewQuestionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	questionRepo trivia.QuestionRepo,
	categoryRepo trivia.CategoryRepo,
) QuestionService {
	return &questionService{
		db:           db,
		log:          baseLog.With("service", "QuestionService"),
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// ListPage returns one page of questions with the total count and the names
// of all categories. Pages start at 1; a page past the end is empty.
func (s *questionService) ListPage(ctx context.Context, tx *gorm.DB, page int) (*QuestionPage, error) {
	if page < 1 {
		return nil, apierr.NotFound(fmt.Errorf("page %d does not exist", page))
	}

	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	total, err := s.questionRepo.Count(ctx, transaction)
	if err != nil {
		s.log.Warn("ListPage: count failed", "error", err)
		return nil, fmt.Errorf("count questions: %w", err)
	}
	// Offsets that would overflow lie past any stored row.
	rows := []*types.QuestionWithCategory{}
	if page <= math.MaxInt/QuestionsPerPage {
		rows, err = s.questionRepo.ListPageWithCategory(ctx, transaction, (page-1)*QuestionsPerPage, QuestionsPerPage)
		if err != nil {
			s.log.Warn("ListPage: load page failed", "error", err, "page", page)
			return nil, fmt.Errorf("list questions: %w", err)
		}
	}
	categories, err := s.categoryRepo.List(ctx, transaction)
	if err != nil {
		s.log.Warn("ListPage: load categories failed", "error", err)
		return nil, fmt.Errorf("list categories: %w", err)
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Type)
	}
	return &QuestionPage{
		Questions:      rows,
		TotalQuestions: total,
		CategoryTypes:  names,
	}, nil
}

func (s *questionService) Create(ctx context.Context, tx *gorm.DB, in NewQuestion) (*CreateResult, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	// No category in the request never matches a stored one.
	if in.CategoryType == nil {
		return &CreateResult{}, nil
	}
	categoryType := *in.CategoryType
	category, err := s.categoryRepo.GetByType(ctx, transaction, categoryType)
	if err != nil {
		s.log.Warn("Create: category lookup failed", "error", err, "category", categoryType)
		return nil, fmt.Errorf("lookup category: %w", err)
	}
	if category == nil {
		return &CreateResult{}, nil
	}

	q := &types.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		Difficulty: in.Difficulty,
		CategoryID: &category.ID,
	}
	created, err := s.questionRepo.Create(ctx, transaction, q)
	if err != nil {
		s.log.Warn("Create: insert failed", "error", err, "category_id", category.ID)
		return nil, fmt.Errorf("insert question: %w", err)
	}
	s.log.Info("Question created", "question_id", created.ID, "category_id", category.ID)
	return &CreateResult{Question: created, Category: category}, nil
}

// Delete removes the question with the given id. It reports false, with no
// error, when there was nothing to delete.
func (s *questionService) Delete(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	q, err := s.questionRepo.GetByID(ctx, transaction, id)
	if err != nil {
		return false, fmt.Errorf("load question: %w", err)
	}
	if q == nil {
		return false, nil
	}
	if err := s.questionRepo.Delete(ctx, transaction, q); err != nil {
		s.log.Warn("Delete: failed", "error", err, "question_id", id)
		return false, fmt.Errorf("delete question: %w", err)
	}
	s.log.Info("Question deleted", "question_id", id)
	return true, nil
}

func (s *questionService) Search(ctx context.Context, tx *gorm.DB, term string) ([]*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	qs, err := s.questionRepo.SearchByText(ctx, transaction, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return qs, nil
}

func (s *questionService) ListByCategory(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}
	qs, err := s.questionRepo.ListByCategoryID(ctx, transaction, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions for category: %w", err)
	}
	return qs, nil
}
