package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/trivia-backend/internal/http/response"
	"github.com/yungbote/trivia-backend/internal/platform/apierr"
	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

// Recovery turns a panic into a 500 error envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		err := fmt.Errorf("%v", recovered)
		if log != nil {
			log.Error("Recovered from panic", "error", err, "path", c.Request.URL.Path)
		}
		response.RespondError(c, apierr.Internal(err))
	})
}
