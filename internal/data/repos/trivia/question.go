package trivia

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/trivia-backend/internal/domain"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

// QuizFilter narrows the quiz candidate set. A nil CategoryID matches
// questions without a category.
type QuizFilter struct {
	CategoryID    *uint
	MinQuestionID int64
	ExcludeIDs    []uint
}

type QuestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, q *types.Question) (*types.Question, error)
	Save(ctx context.Context, tx *gorm.DB, q *types.Question) error
	Delete(ctx context.Context, tx *gorm.DB, q *types.Question) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Question, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	ListPageWithCategory(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.QuestionWithCategory, error)
	SearchByText(ctx context.Context, tx *gorm.DB, term string) ([]*types.Question, error)
	ListByCategoryID(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.Question, error)
	ListQuizCandidates(ctx context.Context, tx *gorm.DB, filter QuizFilter) ([]*types.Question, error)
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return &questionRepo{db: db, log: baseLog.With("repo", "QuestionRepo")}
}

func (r *questionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *questionRepo) Create(ctx context.Context, tx *gorm.DB, q *types.Question) (*types.Question, error) {
	if err := r.conn(tx).WithContext(ctx).Create(q).Error; err != nil {
		return nil, err
	}
	return q, nil
}

// Save persists every field of q as it currently stands.
func (r *questionRepo) Save(ctx context.Context, tx *gorm.DB, q *types.Question) error {
	return r.conn(tx).WithContext(ctx).Omit("Category").Save(q).Error
}

func (r *questionRepo) Delete(ctx context.Context, tx *gorm.DB, q *types.Question) error {
	return r.conn(tx).WithContext(ctx).Delete(&types.Question{}, q.ID).Error
}

// GetByID returns nil, nil when no question has the given id.
func (r *questionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Question, error) {
	var q types.Question
	err := r.conn(tx).WithContext(ctx).Where("id = ?", id).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *questionRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := r.conn(tx).WithContext(ctx).Model(&types.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *questionRepo) ListPageWithCategory(ctx context.Context, tx *gorm.DB, offset, limit int) ([]*types.QuestionWithCategory, error) {
	results := []*types.QuestionWithCategory{}
	err := r.conn(tx).WithContext(ctx).
		Model(&types.Question{}).
		Select("questions.id, questions.question, questions.answer, questions.difficulty, questions.category_id, categories.type AS category_type").
		Joins("LEFT JOIN categories ON categories.id = questions.category_id").
		Order("questions.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// SearchByText matches term anywhere in the question text using the store's
// LIKE semantics.
func (r *questionRepo) SearchByText(ctx context.Context, tx *gorm.DB, term string) ([]*types.Question, error) {
	results := []*types.Question{}
	err := r.conn(tx).WithContext(ctx).
		Where("question LIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *questionRepo) ListByCategoryID(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.Question, error) {
	results := []*types.Question{}
	err := r.conn(tx).WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *questionRepo) ListQuizCandidates(ctx context.Context, tx *gorm.DB, filter QuizFilter) ([]*types.Question, error) {
	query := r.conn(tx).WithContext(ctx).Model(&types.Question{})
	if filter.CategoryID == nil {
		query = query.Where("category_id IS NULL")
	} else {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	query = query.Where("id >= ?", filter.MinQuestionID)
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}

	results := []*types.Question{}
	if err := query.Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
