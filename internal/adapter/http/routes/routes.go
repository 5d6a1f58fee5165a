package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/punchicar71-dev/pcn-system-2.0-sub000/docs" // This will be auto-generated
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/adapter/http/handlers"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/adapter/persistence/repository"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/infrastructure/database"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/infrastructure/notifications"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/infrastructure/payments"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/infrastructure/storage"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/pkg/clock"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces"
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
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	vehicleRepo := repository.NewVehicleDynamoRepository(ddb)
	saleRepo := repository.NewSaleDynamoRepository(ddb)
	writer := repository.NewTransitionDynamoWriter(ddb)
	clk := clock.NewRealClock()

	// Collaborators are optional wiring: the lifecycle engine runs without
	// them, they only add side effects.
	var objectStore interfaces.IObjectStore
	if s3Store, err := storage.NewS3ObjectStore(ctx); err != nil {
		log.Printf("Object store not configured: %v", err)
	} else {
		objectStore = s3Store
	}

	var notifier interfaces.INotifier
	if snsNotifier, err := notifications.NewSNSNotifier(ctx); err != nil {
		log.Printf("Notifier not configured: %v", err)
	} else {
		notifier = snsNotifier
	}

	var paymentGateway interfaces.IPaymentGateway
	if mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")); err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, saleRepo, objectStore, notifier, clk)
	saleUseCase := usecase.NewSaleLifecycleUseCase(saleRepo, vehicleRepo, writer, paymentGateway, notifier, clk)

	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	saleHandler := handlers.NewSaleHandler(saleUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInventoryRoutes(v1, vehicleHandler, saleHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
