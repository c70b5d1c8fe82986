package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/trivia-backend/internal/data/repos/trivia"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

type Repos struct {
	Question trivia.QuestionRepo
	Category trivia.CategoryRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Question: trivia.NewQuestionRepo(db, log),
		Category: trivia.NewCategoryRepo(db, log),
	}
}
