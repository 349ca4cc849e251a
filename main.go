package main

import (
	"log"
	"os"
	"time"

	"land-survey-crm-server/handlers/auth"
	"land-survey-crm-server/handlers/communications"
	"land-survey-crm-server/handlers/customers"
	"land-survey-crm-server/handlers/leads"
	"land-survey-crm-server/handlers/projects"
	"land-survey-crm-server/handlers/submissions"
	"land-survey-crm-server/handlers/surveyrecords"
	"land-survey-crm-server/handlers/users"
	"land-survey-crm-server/metrics"
	"land-survey-crm-server/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Logger.Sync()

	if len(utils.JwtSecret) == 0 {
		log.Fatal("JWT_SECRET is not set in the environment")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.RequestLogger())
	r.Use(metrics.Middleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	utils.ConnectDatabase()

	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	api := r.Group("/")
	{
		submissions.RegisterSubmissionsRoutes(api)
		customers.RegisterCustomersRoutes(api)
		projects.RegisterProjectsRoutes(api)
		leads.RegisterLeadsRoutes(api)
		communications.RegisterCommunicationsRoutes(api)
		surveyrecords.RegisterSurveyRecordsRoutes(api)
	}

	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware())
	{
		users.RegisterUsersRoutes(protected)
	}

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
