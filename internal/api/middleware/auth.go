package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/clipgrab/internal/config"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

// AuthMiddleware checks the X-API-Key header against API_KEY. When no key is
// configured the API is open.
func AuthMiddleware(cfg *config.APIConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APIKey == "" {
			c.Next()
			return
		}

		apiKey := c.GetHeader("X-API-Key")
		if apiKey != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(cfg.APIKey)) == 1 {
			c.Next()
			return
		}

		utils.LogWarn(c.Request.Context(), "Rejected request without a valid API key", utils.Fields{
			"path": c.Request.URL.Path,
			"ip":   c.ClientIP(),
		})

		abortWithError(c, utils.NewUnauthorizedError())
	}
}
