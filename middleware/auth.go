package middleware

import (
	"net/http"
	"strings"

	"cooptaxi/utils"

	"github.com/gin-gonic/gin"
)

// BearerAuthMiddleware checks the session token issued at login and exposes
// the driver email to handlers. There is no account lookup behind it; the
// dashboard is single-driver by design.
func BearerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("driverEmail", email)
		c.Next()
	}
}
