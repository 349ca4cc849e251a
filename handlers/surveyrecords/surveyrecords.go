package surveyrecords

import (
	"net/http"

	"land-survey-crm-server/models"
	"land-survey-crm-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterSurveyRecordsRoutes(r *gin.RouterGroup) {
	r.GET("/survey-records", GetSurveyRecords)
	r.POST("/survey-records", CreateSurveyRecord)
	r.GET("/survey-records/:id", GetSurveyRecord)
	r.PUT("/survey-records/:id", UpdateSurveyRecord)
	r.PATCH("/survey-records/:id", UpdateSurveyRecord)
	r.DELETE("/survey-records/:id", DeleteSurveyRecord)
}

func GetSurveyRecords(c *gin.Context) {
	var records []models.SurveyRecord
	if err := utils.DB.Order("created_at DESC").Find(&records).Error; err != nil {
		utils.Logger.Error("Failed to fetch survey records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch survey records"})
		return
	}

	c.JSON(http.StatusOK, records)
}

func CreateSurveyRecord(c *gin.Context) {
	var record models.SurveyRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if record.SurveyType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"survey_type": []string{"This field is required."}})
		return
	}

	if err := utils.DB.Create(&record).Error; err != nil {
		utils.Logger.Error("Failed to create survey record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create survey record"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func GetSurveyRecord(c *gin.Context) {
	var record models.SurveyRecord
	if err := utils.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	c.JSON(http.StatusOK, record)
}

func UpdateSurveyRecord(c *gin.Context) {
	var record models.SurveyRecord
	if err := utils.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	// Merge the body onto the stored row so unspecified fields keep their
	// values. Primary key and creation time are immutable.
	id, createdAt := record.ID, record.CreatedAt
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	record.ID = id
	record.CreatedAt = createdAt

	if err := utils.DB.Save(&record).Error; err != nil {
		utils.Logger.Error("Failed to update survey record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update survey record"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func DeleteSurveyRecord(c *gin.Context) {
	var record models.SurveyRecord
	if err := utils.DB.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	if err := utils.DB.Delete(&record).Error; err != nil {
		utils.Logger.Error("Failed to delete survey record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete survey record"})
		return
	}

	c.Status(http.StatusNoContent)
}
