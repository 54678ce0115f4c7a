package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/clipgrab/internal/utils"
)

// abortWithError stops the chain with the same envelope the handlers use.
func abortWithError(c *gin.Context, err *utils.AppError) {
	c.AbortWithStatusJSON(err.StatusCode, gin.H{
		"success":    false,
		"error":      err.Message,
		"code":       err.Code,
		"request_id": c.GetString("request_id"),
	})
}
