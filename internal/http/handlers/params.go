package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/trivia-backend/internal/platform/apierr"
)

func uintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, apierr.BadRequest(fmt.Errorf("invalid %s %q", name, raw))
	}
	return uint(v), nil
}

// pageQuery reads ?page=N. Missing or non-numeric values fall back to 1.
func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

// bindJSON decodes the request body into dst. Syntax problems are a 400,
// well-formed JSON with the wrong field types is a 422.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apierr.Unprocessable(fmt.Errorf("field %q must be %s", typeErr.Field, typeErr.Type))
	}
	return apierr.BadRequest(fmt.Errorf("invalid request body: %w", err))
}
