package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/ratelimit"
)

// IPRateLimit usa o IP do cliente como chave.
func IPRateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httperr.HTTPError{
				Code:    "too_many_attempts",
				Message: "Muitas tentativas. Aguarde e tente novamente.",
			})
			return
		}
		c.Next()
	}
}
