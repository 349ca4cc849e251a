package utils

import (
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
)

var JwtSecret []byte

func init() {
	// Load the .env file
	if err := godotenv.Load(); err != nil {
		// It's okay if the .env file isn't found; environment variables may be set elsewhere
		log.Println("No .env file found or error loading .env file:", err)
	}

	JwtSecret = []byte(os.Getenv("JWT_SECRET"))
	if len(JwtSecret) == 0 {
		log.Println("JWT_SECRET is not set in the environment")
	}
}

// GenerateToken creates a signed bearer token for the given identity
func GenerateToken(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	})

	return token.SignedString(JwtSecret)
}
