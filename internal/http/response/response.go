package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/trivia-backend/internal/platform/apierr"
)

type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RespondError renders err as the uniform error envelope. *apierr.Error keeps
// its status; any other error is a 500.
func RespondError(c *gin.Context, err error) {
	status := apierr.Status(err)
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Success: false,
		Message: apierr.Prefix(status) + ": " + msg,
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
