package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/trivia-backend/internal/http/handlers"
	httpMW "github.com/yungbote/trivia-backend/internal/http/middleware"
	"github.com/yungbote/trivia-backend/internal/http/response"
	"github.com/yungbote/trivia-backend/internal/platform/apierr"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string
	// TracingService enables per-request spans under this service name.
	TracingService string

	QuestionHandler *httpH.QuestionHandler
	CategoryHandler *httpH.CategoryHandler
	QuizHandler     *httpH.QuizHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Recovery(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, apierr.NotFound(errors.New("the requested URL was not found on the server")))
	})
	// Method mismatches are reported in the bad-request bucket.
	r.NoMethod(func(c *gin.Context) {
		response.RespondError(c, apierr.BadRequest(errors.New("the method is not allowed for the requested URL")))
	})

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Categories
	if cfg.CategoryHandler != nil {
		r.GET("/categories", cfg.CategoryHandler.ListCategories)
	}

	// Questions
	if cfg.QuestionHandler != nil {
		r.GET("/questions", cfg.QuestionHandler.ListQuestions)
		r.POST("/questions", cfg.QuestionHandler.CreateQuestion)
		r.DELETE("/question/:id/", cfg.QuestionHandler.DeleteQuestion)
		r.GET("/questions/:term/search", cfg.QuestionHandler.SearchQuestions)
		r.GET("/questions/category/:id", cfg.QuestionHandler.ListByCategory)
	}

	// Quiz
	if cfg.QuizHandler != nil {
		r.POST("/questions/play_quiz", cfg.QuizHandler.PlayQuiz)
	}

	return r
}
