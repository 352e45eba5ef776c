package delivery

import (
	"net/http"
	"strings"

	"gecawings-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards protected routes. On success the embedded account
// id is placed in the context under "accountID".
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid token"})
			c.Abort()
			return
		}

		accountID, err := authUsecase.VerifyToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid token"})
			c.Abort()
			return
		}

		c.Set("accountID", accountID)
		c.Next()
	}
}
