package users

import (
	"net/http"

	"land-survey-crm-server/handlers/auth"
	"land-survey-crm-server/models"
	"land-survey-crm-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterUsersRoutes mounts the identity-admin endpoints; the group is
// expected to carry auth.AuthMiddleware().
func RegisterUsersRoutes(r *gin.RouterGroup) {
	r.GET("/users", GetUsers)
	r.GET("/users/:id", GetUser)
	r.PUT("/users/:id", UpdateUser)
	r.PATCH("/users/:id", UpdateUser)
	r.DELETE("/users/:id", DeleteUser)
}

func GetUsers(c *gin.Context) {
	var users []models.User
	if err := utils.DB.Order("date_joined DESC").Find(&users).Error; err != nil {
		utils.Logger.Error("Failed to fetch users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	serialized := make([]gin.H, 0, len(users))
	for _, user := range users {
		serialized = append(serialized, auth.SerializeUser(user))
	}

	c.JSON(http.StatusOK, serialized)
}

func GetUser(c *gin.Context) {
	var user models.User
	if err := utils.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	c.JSON(http.StatusOK, auth.SerializeUser(user))
}

func UpdateUser(c *gin.Context) {
	var user models.User
	if err := utils.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	var input struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Role     *string `json:"role"`
		IsActive *bool   `json:"isActive"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		// Only "admin" maps to the staff flag; any other value clears it.
		user.IsStaff = *input.Role == "admin"
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := utils.DB.Save(&user).Error; err != nil {
		utils.Logger.Error("Failed to update user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, auth.SerializeUser(user))
}

func DeleteUser(c *gin.Context) {
	var user models.User
	if err := utils.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	// Profile and leave applications go with the user; leaves the user only
	// approved are detached instead.
	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserCustomerData{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserLeave{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.UserLeave{}).Where("approved_by_id = ?", user.ID).Update("approved_by_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		utils.Logger.Error("Failed to delete user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
