package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/trivia-backend/internal/http/response"
	"github.com/yungbote/trivia-backend/internal/services"
)

type CategoryHandler struct {
	categories services.CategoryService
}

func NewCategoryHandler(categories services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	byID, err := h.categories.TypesByID(c.Request.Context(), nil)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"success": true, "categories": byID, "message": ""})
}
