package utils

import (
	"fmt"
	"log"
	"os"

	"land-survey-crm-server/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("CRM_DB"),
	)

	var err error

	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to CRM database: %v", err)
	}

	DB.AutoMigrate(
		&models.Customer{},
		&models.Project{},
		&models.SurveyRecord{},
		&models.Lead{},
		&models.Communication{},
		&models.AdminUser{},
		&models.LdrContact{},
		&models.LdrCareer{},
		&models.ClientRegister{},
		&models.User{},
		&models.UserCustomerData{},
		&models.UserLeave{},
	)
}
