package main

import (
	_ "espaco_castro/docs"
	"espaco_castro/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Espaço Castro API
// @version         1.0
// @description     Booking-inquiry service for the Espaço Castro venue (intake + availability) backed by DynamoDB.

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by /api/admin/login.

func main() {
	routes.Run()
}
