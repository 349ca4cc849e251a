package submissions

import (
	"net/http"

	"land-survey-crm-server/models"
	"land-survey-crm-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Read-only listings of the website submission tables. No write paths exist.
func RegisterSubmissionsRoutes(r *gin.RouterGroup) {
	r.GET("/admin", GetAdminUsers)
	r.GET("/ldr-contacts", GetLdrContacts)
	r.GET("/ldr-careers", GetLdrCareers)
	r.GET("/client-registers", GetClientRegisters)
}

func GetAdminUsers(c *gin.Context) {
	var admins []models.AdminUser
	if err := utils.DB.Order("created_at DESC").Find(&admins).Error; err != nil {
		utils.Logger.Error("Failed to fetch admin users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admin users"})
		return
	}

	c.JSON(http.StatusOK, admins)
}

func GetLdrContacts(c *gin.Context) {
	var contacts []models.LdrContact
	if err := utils.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		utils.Logger.Error("Failed to fetch contact submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact submissions"})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func GetLdrCareers(c *gin.Context) {
	var careers []models.LdrCareer
	if err := utils.DB.Order("created_at DESC").Find(&careers).Error; err != nil {
		utils.Logger.Error("Failed to fetch career submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch career submissions"})
		return
	}

	c.JSON(http.StatusOK, careers)
}

func GetClientRegisters(c *gin.Context) {
	var registers []models.ClientRegister
	if err := utils.DB.Order("created_at DESC").Find(&registers).Error; err != nil {
		utils.Logger.Error("Failed to fetch client registrations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch client registrations"})
		return
	}

	c.JSON(http.StatusOK, registers)
}
