package middleware

import (
	"photoshare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckAdmin requires the authenticated caller to be an admin.
func CheckAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, ok := c.Get("is_admin")
		if !ok || isAdmin != true {
			response.Fail(c, response.Forbidden, "permission denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
