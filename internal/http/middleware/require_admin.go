package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const HeaderAdminToken = "X-Admin-Token"

// RequireAdmin guards the console API with a shared staff token. Session
// handling lives in the frontend's auth layer; this service only checks the
// token it forwards. An empty configured token locks the API down.
func RequireAdmin(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(HeaderAdminToken)
		if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "admin token required",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
