package middleware

import (
	"net/http"

	"github.com/palgaurav085-cmd/animexa-worker/config"
	"github.com/gin-gonic/gin"
)

const WorkerSecretHeader = "X-Worker-Secret"

type AuthHandler interface {
	AuthMiddleware() gin.HandlerFunc
}

type authHandler struct {
	secret string
}

func NewAuthHandler(authConfig *config.AuthConfig) AuthHandler {
	return &authHandler{secret: authConfig.WorkerSecret}
}

// AuthMiddleware rejects requests whose shared secret does not match
// before any handler runs. The health probe stays open.
func (h *authHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		if c.GetHeader(WorkerSecretHeader) != h.secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid worker secret"})
			return
		}

		c.Next()
	}
}
