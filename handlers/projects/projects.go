package projects

import (
	"net/http"

	"land-survey-crm-server/models"
	"land-survey-crm-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterProjectsRoutes(r *gin.RouterGroup) {
	r.GET("/projects", GetProjects)
	r.POST("/projects", CreateProject)
	r.GET("/projects/:id", GetProject)
	r.PUT("/projects/:id", UpdateProject)
	r.PATCH("/projects/:id", UpdateProject)
	r.DELETE("/projects/:id", DeleteProject)
}

func GetProjects(c *gin.Context) {
	var projects []models.Project
	if err := utils.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		utils.Logger.Error("Failed to fetch projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

func CreateProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if project.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"name": []string{"This field is required."}})
		return
	}

	if err := utils.DB.Create(&project).Error; err != nil {
		utils.Logger.Error("Failed to create project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func GetProject(c *gin.Context) {
	var project models.Project
	if err := utils.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	c.JSON(http.StatusOK, project)
}

func UpdateProject(c *gin.Context) {
	var project models.Project
	if err := utils.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	// Merge the body onto the stored row so unspecified fields keep their
	// values. Primary key and creation time are immutable.
	id, createdAt := project.ID, project.CreatedAt
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	project.ID = id
	project.CreatedAt = createdAt

	if err := utils.DB.Save(&project).Error; err != nil {
		utils.Logger.Error("Failed to update project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, project)
}

func DeleteProject(c *gin.Context) {
	var project models.Project
	if err := utils.DB.First(&project, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	// Survey records outlive the project with a null reference.
	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SurveyRecord{}).Where("project_id = ?", project.ID).Update("project_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		utils.Logger.Error("Failed to delete project", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.Status(http.StatusNoContent)
}
