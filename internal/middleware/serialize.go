package middleware

import "github.com/gin-gonic/gin"

// Serialize runs handlers one at a time. The task store has no locking of its own.
func (m Middleware) Serialize() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.mu.Lock()
		defer m.mu.Unlock()
		c.Next()
	}
}
