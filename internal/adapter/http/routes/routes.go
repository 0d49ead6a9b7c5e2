package routes

import (
	"context"
	"net/http"
	"os"

	_ "contractor_takeoff/docs" // generated by swag init
	"contractor_takeoff/internal/adapter/http/handlers"
	"contractor_takeoff/internal/adapter/persistence/repository"
	"contractor_takeoff/internal/domain/lookup"
	"contractor_takeoff/internal/infrastructure/database"
	"contractor_takeoff/internal/infrastructure/logging"
	"contractor_takeoff/internal/usecase"
	"contractor_takeoff/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const defaultPort = "8080"

// Run will start the server
func Run() {
	logger := logging.Must()
	defer func() { _ = logger.Sync() }()

	tables, err := lookup.Load(os.Getenv("LOOKUP_TABLES_FILE"))
	if err != nil {
		logger.Fatal("failed to load lookup tables", zap.Error(err))
	}

	ddb, err := database.ConnectDynamoDB(context.Background(), logger)
	if err != nil {
		logger.Fatal("failed to create dynamodb client", zap.Error(err))
	}

	router := NewRouter(logger, tables,
		repository.NewTakeoffDynamoRepository(ddb),
		repository.NewHardwareCatalogDynamoRepository(ddb),
	)

	port := getenvDefault("PORT", defaultPort)
	logger.Info("starting takeoff service", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}

// NewRouter wires use cases and handlers over the given repositories.
func NewRouter(logger *zap.Logger, tables lookup.Tables, takeoffRepo interfaces.ITakeoffRepository, catalogRepo interfaces.IHardwareCatalogRepository) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	takeoffUseCase := usecase.NewTakeoffUseCase(takeoffRepo, catalogRepo, tables, logger)
	catalogUseCase := usecase.NewHardwareCatalogUseCase(catalogRepo, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLookupRoutes(v1, handlers.NewLookupHandler(tables))
	addHardwareRoutes(v1, handlers.NewHardwareCatalogHandler(catalogUseCase))
	addTakeoffRoutes(v1, handlers.NewTakeoffHandler(takeoffUseCase))
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
