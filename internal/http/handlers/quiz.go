package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/trivia-backend/internal/http/response"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
	"github.com/yungbote/trivia-backend/internal/services"
)

type QuizHandler struct {
	log  *logger.Logger
	quiz services.QuizService
}

func NewQuizHandler(log *logger.Logger, quiz services.QuizService) *QuizHandler {
	return &QuizHandler{log: log.With("handler", "QuizHandler"), quiz: quiz}
}

type playQuizRequest struct {
	CategoryID        *uint  `json:"category_id"`
	PrevQuestionID    int64  `json:"prev_question_id"`
	PreviousQuestions []uint `json:"previous_questions"`
}

// POST /questions/play_quiz
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req playQuizRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}

	q, err := h.quiz.NextQuestion(c.Request.Context(), nil, services.QuizRequest{
		CategoryID:        req.CategoryID,
		PrevQuestionID:    req.PrevQuestionID,
		PreviousQuestions: req.PreviousQuestions,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if q == nil {
		category := "none"
		if req.CategoryID != nil {
			category = fmt.Sprint(*req.CategoryID)
		}
		c.JSON(http.StatusNotFound, gin.H{
			"success": true,
			"message": "no question exists for category " + category,
		})
		return
	}
	h.log.Debug("Quiz question selected", "question_id", q.ID, "prev_question_id", req.PrevQuestionID)
	response.RespondOK(c, gin.H{
		"success":   true,
		"questions": questionRef{Question: q.Question, ID: q.ID},
		"message":   "",
	})
}
