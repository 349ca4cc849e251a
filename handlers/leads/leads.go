package leads

import (
	"net/http"

	"land-survey-crm-server/models"
	"land-survey-crm-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterLeadsRoutes(r *gin.RouterGroup) {
	r.GET("/leads", GetLeads)
	r.POST("/leads", CreateLead)
	r.GET("/leads/:id", GetLead)
	r.PUT("/leads/:id", UpdateLead)
	r.PATCH("/leads/:id", UpdateLead)
	r.DELETE("/leads/:id", DeleteLead)
}

func GetLeads(c *gin.Context) {
	var leads []models.Lead
	if err := utils.DB.Order("created_at DESC").Find(&leads).Error; err != nil {
		utils.Logger.Error("Failed to fetch leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}

	c.JSON(http.StatusOK, leads)
}

func CreateLead(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := utils.DB.Create(&lead).Error; err != nil {
		utils.Logger.Error("Failed to create lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
		return
	}

	c.JSON(http.StatusCreated, lead)
}

func GetLead(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	c.JSON(http.StatusOK, lead)
}

func UpdateLead(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	// Merge the body onto the stored row so unspecified fields keep their
	// values. Primary key and creation time are immutable.
	id, createdAt := lead.ID, lead.CreatedAt
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	lead.ID = id
	lead.CreatedAt = createdAt

	if err := utils.DB.Save(&lead).Error; err != nil {
		utils.Logger.Error("Failed to update lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

func DeleteLead(c *gin.Context) {
	var lead models.Lead
	if err := utils.DB.First(&lead, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	if err := utils.DB.Delete(&lead).Error; err != nil {
		utils.Logger.Error("Failed to delete lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}

	c.Status(http.StatusNoContent)
}
