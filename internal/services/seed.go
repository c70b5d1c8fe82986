package services

import (
	"context"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/yungbote/trivia-backend/internal/data/repos/trivia"
	types "github.com/yungbote/trivia-backend/internal/domain"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

//go:embed seeddata/trivia.yaml
var defaultSeed []byte

type SeedQuestion struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Difficulty int    `yaml:"difficulty"`
	Category   string `yaml:"category"`
}

type SeedFile struct {
	Categories []string       `yaml:"categories"`
	Questions  []SeedQuestion `yaml:"questions"`
}

type SeedResult struct {
	CategoriesCreated int
	QuestionsCreated  int
}

type SeedService interface {
	// Seed loads r, or the embedded default data when r is nil. Categories are
	// matched by type and questions by text within a category, so reruns only
	// add what is missing.
	Seed(ctx context.Context, r io.Reader) (*SeedResult, error)
}

type seedService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo trivia.CategoryRepo
	questionRepo trivia.QuestionRepo
}

func NewSeedService(db *gorm.DB, baseLog *logger.Logger, categoryRepo trivia.CategoryRepo, questionRepo trivia.QuestionRepo) SeedService {
	return &seedService{
		db:           db,
		log:          baseLog.With("service", "SeedService"),
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

func ParseSeed(raw []byte) (*SeedFile, error) {
	var f SeedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

func (s *seedService) Seed(ctx context.Context, r io.Reader) (*SeedResult, error) {
	raw := defaultSeed
	if r != nil {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}
	file, err := ParseSeed(raw)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		byType := map[string]*types.Category{}
		ensure := func(name string) (*types.Category, error) {
			if c, ok := byType[name]; ok {
				return c, nil
			}
			c, err := s.categoryRepo.GetByType(ctx, tx, name)
			if err != nil {
				return nil, err
			}
			if c == nil {
				created, err := s.categoryRepo.Create(ctx, tx, []*types.Category{{Type: name}})
				if err != nil {
					return nil, err
				}
				c = created[0]
				result.CategoriesCreated++
			}
			byType[name] = c
			return c, nil
		}

		for _, name := range file.Categories {
			if _, err := ensure(name); err != nil {
				return fmt.Errorf("seed category %q: %w", name, err)
			}
		}
		for _, sq := range file.Questions {
			c, err := ensure(sq.Category)
			if err != nil {
				return fmt.Errorf("seed category %q: %w", sq.Category, err)
			}
			existing, err := s.questionRepo.ListByCategoryID(ctx, tx, c.ID)
			if err != nil {
				return fmt.Errorf("load questions for %q: %w", sq.Category, err)
			}
			if hasQuestionText(existing, sq.Question) {
				continue
			}
			q := &types.Question{
				Question:   &sq.Question,
				Answer:     &sq.Answer,
				Difficulty: &sq.Difficulty,
				CategoryID: &c.ID,
			}
			if _, err := s.questionRepo.Create(ctx, tx, q); err != nil {
				return fmt.Errorf("seed question %q: %w", sq.Question, err)
			}
			result.QuestionsCreated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Seed complete", "categories_created", result.CategoriesCreated, "questions_created", result.QuestionsCreated)
	return result, nil
}

func hasQuestionText(qs []*types.Question, text string) bool {
	for _, q := range qs {
		if q.Question != nil && *q.Question == text {
			return true
		}
	}
	return false
}
