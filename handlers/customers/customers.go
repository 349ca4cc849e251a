package customers

import (
	"net/http"

	"land-survey-crm-server/models"
	"land-survey-crm-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterCustomersRoutes(r *gin.RouterGroup) {
	r.GET("/customers", GetCustomers)
	r.POST("/customers", CreateCustomer)
	r.GET("/customers/:id", GetCustomer)
	r.PUT("/customers/:id", UpdateCustomer)
	r.PATCH("/customers/:id", UpdateCustomer)
	r.DELETE("/customers/:id", DeleteCustomer)
}

func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := utils.DB.Order("created_at DESC").Find(&customers).Error; err != nil {
		utils.Logger.Error("Failed to fetch customers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

func CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	fieldErrors := gin.H{}
	if customer.FirstName == "" {
		fieldErrors["first_name"] = []string{"This field is required."}
	}
	if customer.LastName == "" {
		fieldErrors["last_name"] = []string{"This field is required."}
	}
	if customer.Email == "" {
		fieldErrors["email"] = []string{"This field is required."}
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	if err := utils.DB.Create(&customer).Error; err != nil {
		utils.Logger.Error("Failed to create customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func GetCustomer(c *gin.Context) {
	var customer models.Customer
	if err := utils.DB.First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	c.JSON(http.StatusOK, customer)
}

func UpdateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := utils.DB.First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	// Merge the body onto the stored row so unspecified fields keep their
	// values. Primary key and creation time are immutable.
	id, createdAt := customer.ID, customer.CreatedAt
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	customer.ID = id
	customer.CreatedAt = createdAt

	if err := utils.DB.Save(&customer).Error; err != nil {
		utils.Logger.Error("Failed to update customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

func DeleteCustomer(c *gin.Context) {
	var customer models.Customer
	if err := utils.DB.First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	// Dependents outlive the customer with a null reference.
	err := utils.DB.Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&models.Project{},
			&models.Lead{},
			&models.Communication{},
			&models.SurveyRecord{},
		}
		for _, dependent := range dependents {
			if err := tx.Model(dependent).Where("customer_id = ?", customer.ID).Update("customer_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&customer).Error
	})
	if err != nil {
		utils.Logger.Error("Failed to delete customer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}

	c.Status(http.StatusNoContent)
}
