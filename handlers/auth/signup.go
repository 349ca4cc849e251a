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
	"gorm.io/gorm"
)

// Signup creates an identity record and issues a bearer token for it.
func Signup(c *gin.Context) {
	metrics.SignupCounter.Inc()

	var input struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		Role            string `json:"role"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	if input.Username == "" || input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Passwords do not match"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your password. Please try again."})
		return
	}

	user := models.User{
		Username:   input.Username,
		Email:      input.Email,
		Password:   string(hashedPassword),
		IsStaff:    input.Role == "admin",
		IsActive:   true,
		DateJoined: time.Now(),
	}

	// The duplicate checks and the insert run in one transaction so two
	// concurrent signups cannot both pass the checks; the username column
	// carries a unique constraint as a backstop.
	var conflict string
	err = utils.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			conflict = "User with this email already exists"
			return gorm.ErrDuplicatedKey
		}

		if err := tx.Model(&models.User{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			conflict = "Username already taken"
			return gorm.ErrDuplicatedKey
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		if conflict != "" {
			if conflict == "User with this email already exists" {
				metrics.RecordAuthError("duplicate_email")
			} else {
				metrics.RecordAuthError("duplicate_username")
			}
			c.JSON(http.StatusConflict, gin.H{"message": conflict})
			return
		}
		utils.Logger.Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "We encountered an issue creating your account. Please try again later."})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		utils.Logger.Error("Failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    SerializeUser(user),
		"token":   token,
	})
}
