package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/trivia-backend/internal/platform/logger"
	"github.com/yungbote/trivia-backend/internal/services"
)

type Services struct {
	Question services.QuestionService
	Category services.CategoryService
	Quiz     services.QuizService
	Seed     services.SeedService
}

func wireServices(db *gorm.DB, log *logger.Logger, repos Repos, picker services.Picker) Services {
	log.Info("Wiring services...")
	return Services{
		Question: services.NewQuestionService(db, log, repos.Question, repos.Category),
		Category: services.NewCategoryService(db, log, repos.Category),
		Quiz:     services.NewQuizService(db, log, repos.Question, picker),
		Seed:     services.NewSeedService(db, log, repos.Category, repos.Question),
	}
}
