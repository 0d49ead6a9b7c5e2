package routes

import (
	"contractor_takeoff/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLookups   = "/lookups"
	PathHardware  = "/hardware"
	PathTakeoffs  = "/takeoffs"
	PathCustomers = "/customers"
)

func addLookupRoutes(rg *gin.RouterGroup, h *handlers.LookupHandler) {
	rg.GET(PathLookups+"/:trade", h.GetByTrade)
}

func addHardwareRoutes(rg *gin.RouterGroup, h *handlers.HardwareCatalogHandler) {
	hardware := rg.Group(PathHardware)
	{
		hardware.GET("", h.List)
		hardware.POST("", h.Create)
		hardware.GET("/:id", h.GetByID)
	}
}

func addTakeoffRoutes(rg *gin.RouterGroup, h *handlers.TakeoffHandler) {
	takeoffs := rg.Group(PathTakeoffs)
	{
		takeoffs.POST("/draft", h.Draft)
		takeoffs.POST("/preview", h.Preview)
		takeoffs.POST("", h.Create)
		takeoffs.PUT("/:id", h.Update)
		takeoffs.GET("/:id", h.GetByID)
		takeoffs.DELETE("/:id", h.Delete)
		takeoffs.PATCH("/:id/hardware/:item_id", h.UpdateHardwareOverride)
	}

	rg.GET(PathCustomers+"/:customer_id/takeoffs", h.ListByCustomer)
}
