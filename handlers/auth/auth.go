package auth

import (
	"land-survey-crm-server/models"

	"github.com/gin-gonic/gin"
)

// SerializeUser shapes an identity record the way the admin UI expects it.
func SerializeUser(user models.User) gin.H {
	var lastLogin interface{}
	if user.LastLogin != nil {
		lastLogin = user.LastLogin
	}

	return gin.H{
		"id":        user.ID,
		"username":  user.Username,
		"email":     user.Email,
		"role":      user.Role(),
		"isActive":  user.IsActive,
		"createdAt": user.DateJoined,
		"lastLogin": lastLogin,
	}
}
