package auth

import (
	"net/http"
	"time"

	"land-survey-crm-server/metrics"
	"land-survey-crm-server/models"
	"land-survey-crm-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates by email or username and issues a bearer token.
func Login(c *gin.Context) {
	metrics.LoginCounter.Inc()

	var input struct {
		EmailOrUsername string `json:"emailOrUsername"`
		Password        string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email/username and password are required"})
		return
	}

	if input.EmailOrUsername == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email/username and password are required"})
		return
	}

	// An email match wins; otherwise the input is taken as a username.
	username := input.EmailOrUsername
	var byEmail models.User
	if err := utils.DB.Where("email = ?", input.EmailOrUsername).First(&byEmail).Error; err == nil {
		username = byEmail.Username
	}

	var user models.User
	if err := utils.DB.Where("username = ?", username).First(&user).Error; err != nil {
		metrics.RecordAuthError("invalid_credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		metrics.RecordAuthError("invalid_credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if !user.IsActive {
		metrics.RecordAuthError("inactive_account")
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Account is inactive. Please contact administrator."})
		return
	}

	now := time.Now()
	user.LastLogin = &now
	if err := utils.DB.Model(&user).Update("last_login", now).Error; err != nil {
		utils.Logger.Error("Failed to update last login", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "We encountered an issue processing your request. Please try again later."})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.Logger.Error("Failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    SerializeUser(user),
		"token":   token,
	})
}
