package communications

import (
	"net/http"

	"land-survey-crm-server/models"
	"land-survey-crm-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterCommunicationsRoutes(r *gin.RouterGroup) {
	r.GET("/communications", GetCommunications)
	r.POST("/communications", CreateCommunication)
	r.GET("/communications/:id", GetCommunication)
	r.PUT("/communications/:id", UpdateCommunication)
	r.PATCH("/communications/:id", UpdateCommunication)
	r.DELETE("/communications/:id", DeleteCommunication)
}

func GetCommunications(c *gin.Context) {
	var communications []models.Communication
	if err := utils.DB.Order("created_at DESC").Find(&communications).Error; err != nil {
		utils.Logger.Error("Failed to fetch communications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch communications"})
		return
	}

	c.JSON(http.StatusOK, communications)
}

func CreateCommunication(c *gin.Context) {
	var communication models.Communication
	if err := c.ShouldBindJSON(&communication); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	fieldErrors := gin.H{}
	if communication.Type == "" {
		fieldErrors["type"] = []string{"This field is required."}
	}
	if communication.Content == "" {
		fieldErrors["content"] = []string{"This field is required."}
	}
	if communication.Direction == "" {
		fieldErrors["direction"] = []string{"This field is required."}
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	if err := utils.DB.Create(&communication).Error; err != nil {
		utils.Logger.Error("Failed to create communication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create communication"})
		return
	}

	c.JSON(http.StatusCreated, communication)
}

func GetCommunication(c *gin.Context) {
	var communication models.Communication
	if err := utils.DB.First(&communication, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	c.JSON(http.StatusOK, communication)
}

func UpdateCommunication(c *gin.Context) {
	var communication models.Communication
	if err := utils.DB.First(&communication, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	// Merge the body onto the stored row so unspecified fields keep their
	// values. Primary key and creation time are immutable.
	id, createdAt := communication.ID, communication.CreatedAt
	if err := c.ShouldBindJSON(&communication); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	communication.ID = id
	communication.CreatedAt = createdAt

	if err := utils.DB.Save(&communication).Error; err != nil {
		utils.Logger.Error("Failed to update communication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update communication"})
		return
	}

	c.JSON(http.StatusOK, communication)
}

func DeleteCommunication(c *gin.Context) {
	var communication models.Communication
	if err := utils.DB.First(&communication, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	if err := utils.DB.Delete(&communication).Error; err != nil {
		utils.Logger.Error("Failed to delete communication", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete communication"})
		return
	}

	c.Status(http.StatusNoContent)
}
