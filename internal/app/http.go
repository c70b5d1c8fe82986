package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/trivia-backend/internal/http"
	httpH "github.com/yungbote/trivia-backend/internal/http/handlers"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Question *httpH.QuestionHandler
	Category *httpH.CategoryHandler
	Quiz     *httpH.QuizHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(db),
		Question: httpH.NewQuestionHandler(log, services.Question),
		Category: httpH.NewCategoryHandler(services.Category),
		Quiz:     httpH.NewQuizHandler(log, services.Quiz),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	tracingService := ""
	if cfg.Otel.Enabled {
		tracingService = cfg.Otel.ServiceName
	}
	return http.NewRouter(http.RouterConfig{
		Log:             log,
		CORSOrigins:     cfg.CORSOrigins,
		TracingService:  tracingService,
		QuestionHandler: handlers.Question,
		CategoryHandler: handlers.Category,
		QuizHandler:     handlers.Quiz,
		HealthHandler:   handlers.Health,
	})
}
