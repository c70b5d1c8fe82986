package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"gorm.io/gorm"

	"github.com/yungbote/trivia-backend/internal/data/repos/trivia"
	types "github.com/yungbote/trivia-backend/internal/domain"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

// Picker chooses an index in [0, n). Implementations must be safe for
// concurrent use.
type Picker interface {
	IntN(n int) int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// RandomPicker draws from the process-wide random source.
func RandomPicker() Picker { return globalPicker{} }

type QuizRequest struct {
	// CategoryID nil selects questions that have no category.
	CategoryID     *uint
	PrevQuestionID int64
	// PreviousQuestions, when set, are excluded exactly.
	PreviousQuestions []uint
}

type QuizService interface {
	// NextQuestion returns nil, nil when no candidate remains.
	NextQuestion(ctx context.Context, tx *gorm.DB, req QuizRequest) (*types.Question, error)
}

type quizService struct {
	db           *gorm.DB
	log          *logger.Logger
	questionRepo trivia.QuestionRepo
	picker       Picker
}

func NewQuizService(db *gorm.DB, baseLog *logger.Logger, questionRepo trivia.QuestionRepo, picker Picker) QuizService {
	if picker == nil {
		picker = RandomPicker()
	}
	return &quizService{
		db:           db,
		log:          baseLog.With("service", "QuizService"),
		questionRepo: questionRepo,
		picker:       picker,
	}
}

func (s *quizService) NextQuestion(ctx context.Context, tx *gorm.DB, req QuizRequest) (*types.Question, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	candidates, err := s.questionRepo.ListQuizCandidates(ctx, transaction, trivia.QuizFilter{
		CategoryID:    req.CategoryID,
		MinQuestionID: req.PrevQuestionID,
		ExcludeIDs:    req.PreviousQuestions,
	})
	if err != nil {
		s.log.Warn("NextQuestion: load candidates failed", "error", err)
		return nil, fmt.Errorf("list quiz candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return candidates[s.picker.IntN(len(candidates))], nil
}
