package auth

import (
	"net/http"

	"land-survey-crm-server/models"
	"land-survey-crm-server/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header is missing"})
			c.Abort()
			return
		}

		userID, err := utils.ExtractUserIDFromToken(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
			c.Abort()
			return
		}

		// Fetch the user from the database
		var user models.User
		if err := utils.DB.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			c.Abort()
			return
		}

		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Account is inactive. Please contact administrator."})
			c.Abort()
			return
		}

		// Set the user in the context
		c.Set("user", user)

		c.Next()
	}
}
