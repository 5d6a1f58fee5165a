package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/adapter/http/handlers"
)

const (
	PathVehicles = "/vehicles"
	PathSales    = "/sales"
)

func addInventoryRoutes(rg *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, saleHandler *handlers.SaleHandler) {
	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/check-number", vehicleHandler.CheckNumber)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
		vehicles.POST("/:id/images", vehicleHandler.RequestImageUpload)
	}

	sales := rg.Group(PathSales)
	{
		sales.POST("", saleHandler.OpenSale)
		sales.GET("", saleHandler.ListSales)
		sales.GET("/:id", saleHandler.GetSale)
		sales.GET("/:id/deadline", saleHandler.GetDeadline)
		sales.PATCH("/:id/advance", saleHandler.RecordAdvance)
		sales.PATCH("/:id/complete", saleHandler.CompleteSale)
		sales.PATCH("/:id/cancel", saleHandler.CancelSale)
		sales.PATCH("/:id/return", saleHandler.ReturnSale)
	}
}
