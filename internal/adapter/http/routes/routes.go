package routes

import (
	"log"
	"strconv"

	_ "cotafrete/docs" // swag-generated
	"cotafrete/internal/adapter/http/handlers"
	"cotafrete/internal/adapter/http/middleware"
	repository2 "cotafrete/internal/adapter/persistence/repository"
	"cotafrete/internal/infrastructure/database"
	"cotafrete/internal/usecase"

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

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	responseRepo := repository2.NewResponseDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	ledgerRepo := repository2.NewLedgerDynamoRepository(ddb)
	ratingRepo := repository2.NewRatingDynamoRepository(ddb)

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, responseRepo, profileRepo, ledgerRepo)
	responseUseCase := usecase.NewResponseUseCase(responseRepo, quotationRepo)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, quotationRepo, responseRepo, profileRepo)
	financeUseCase := usecase.NewFinanceUseCase(ledgerRepo, profileRepo)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	responseHandler := handlers.NewResponseHandler(responseUseCase)
	ratingHandler := handlers.NewRatingHandler(ratingUseCase)
	financeHandler := handlers.NewFinanceHandler(financeUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas
	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware())
	addMarketplaceRoutes(authed, quotationHandler, responseHandler, ratingHandler, financeHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
