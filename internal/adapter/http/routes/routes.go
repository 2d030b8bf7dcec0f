package routes

import (
	"log"
	"os"
	"strconv"

	_ "espaco_castro/docs" // This will be auto-generated
	"espaco_castro/internal/adapter/http/handlers"
	repository2 "espaco_castro/internal/adapter/persistence/repository"
	"espaco_castro/internal/infrastructure/database"
	"espaco_castro/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	inquiryRepo := repository2.NewInquiryDynamoRepository(ddb)

	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo)
	availabilityUseCase := usecase.NewAvailabilityUseCase(inquiryRepo)
	authUseCase := usecase.NewAuthUseCase(os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD"))

	inquiryHandler := handlers.NewInquiryHandler(inquiryUseCase)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	// Rotas publicas + admin
	api := router.Group("/api")
	addPingRoutes(api)
	addInquiryRoutes(api, inquiryHandler, availabilityHandler, authHandler, authUseCase)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
