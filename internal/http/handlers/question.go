package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/trivia-backend/internal/domain"
	"github.com/yungbote/trivia-backend/internal/http/response"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
	"github.com/yungbote/trivia-backend/internal/services"
)

type QuestionHandler struct {
	log       *logger.Logger
	questions services.QuestionService
}

func NewQuestionHandler(log *logger.Logger, questions services.QuestionService) *QuestionHandler {
	return &QuestionHandler{log: log.With("handler", "QuestionHandler"), questions: questions}
}

type questionListItem struct {
	Question        *string `json:"question"`
	CurrentCategory *string `json:"current_category"`
}

type questionRef struct {
	Question *string `json:"question"`
	ID       uint    `json:"id"`
}

type createQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *string `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

func questionRefs(qs []*types.Question) []questionRef {
	out := make([]questionRef, 0, len(qs))
	for _, q := range qs {
		out = append(out, questionRef{Question: q.Question, ID: q.ID})
	}
	return out
}

// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := h.questions.ListPage(c.Request.Context(), nil, pageQuery(c))
	if err != nil {
		response.RespondError(c, err)
		return
	}

	items := make([]questionListItem, 0, len(page.Questions))
	for _, q := range page.Questions {
		items = append(items, questionListItem{Question: q.Question, CurrentCategory: q.CategoryType})
	}
	response.RespondOK(c, gin.H{
		"success":   true,
		"questions": items,
		"other_information": gin.H{
			"number_of_total_questions": page.TotalQuestions,
			"categories":                page.CategoryTypes,
		},
		"message": "",
	})
}

// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req createQuestionRequest
	if err := bindJSON(c, &req); err != nil {
		response.RespondError(c, err)
		return
	}

	res, err := h.questions.Create(c.Request.Context(), nil, services.NewQuestion{
		Question:     req.Question,
		Answer:       req.Answer,
		Difficulty:   req.Difficulty,
		CategoryType: req.Category,
	})
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if res.Category == nil {
		if req.Category != nil {
			h.log.Debug("CreateQuestion: unknown category", "category", *req.Category)
		}
		c.JSON(http.StatusNotFound, gin.H{
			"success":           false,
			"inserted_question": nil,
			"message":           "category doesn't exist",
		})
		return
	}

	response.RespondCreated(c, gin.H{
		"success":           true,
		"inserted_question": res.Question.Format(&res.Category.Type),
		"message":           "question was inserted in database",
	})
}

// DELETE /question/:id/
//
// A missing id is answered with 200 and a "doesn't exist" message.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	deleted, err := h.questions.Delete(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	msg := "question was deleted"
	if !deleted {
		msg = "question doesn't exist"
	}
	response.RespondOK(c, gin.H{"success": true, "message": msg})
}

// GET /questions/:term/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	qs, err := h.questions.Search(c.Request.Context(), nil, c.Param("term"))
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if len(qs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": true,
			"message": "no question exists for pattern sent",
		})
		return
	}
	response.RespondOK(c, gin.H{"success": true, "questions": questionRefs(qs), "message": ""})
}

// GET /questions/category/:id
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	categoryID, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	qs, err := h.questions.ListByCategory(c.Request.Context(), nil, categoryID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	if len(qs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": true,
			"message": fmt.Sprintf("no question exists for category %d", categoryID),
		})
		return
	}
	response.RespondOK(c, gin.H{"success": true, "questions": questionRefs(qs), "message": ""})
}
