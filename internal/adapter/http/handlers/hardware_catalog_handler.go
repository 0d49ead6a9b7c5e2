package handlers

import (
	"errors"
	"net/http"

	request "contractor_takeoff/internal/adapter/http/dto/request"
	response "contractor_takeoff/internal/adapter/http/dto/response"
	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/usecase"
	"contractor_takeoff/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidHardwarePayload = pkg.NewDomainErrorSimple("INVALID_HARDWARE_INPUT", "Invalid hardware item payload", http.StatusBadRequest)

type HardwareCatalogHandler struct {
	usecase usecase.IHardwareCatalogUseCase
}

func NewHardwareCatalogHandler(uc usecase.IHardwareCatalogUseCase) *HardwareCatalogHandler {
	return &HardwareCatalogHandler{usecase: uc}
}

// List godoc
// @Summary      List the hardware catalog of a trade
// @Tags         hardware
// @Produce      json
// @Param        trade  query     string  true  "Trade (siding, stone)"
// @Success      200    {array}   response.HardwareItemResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /hardware [get]
func (h *HardwareCatalogHandler) List(c *gin.Context) {
	items, err := h.usecase.ListByTrade(c.Request.Context(), c.Query("trade"))
	if err != nil {
		writeError(c, mapHardwareError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHardwareItems(items))
}

// Create godoc
// @Summary      Add a generic hardware item
// @Tags         hardware
// @Accept       json
// @Produce      json
// @Param        body  body      request.HardwareItemRequest  true  "Hardware item"
// @Success      201   {object}  response.HardwareItemResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /hardware [post]
func (h *HardwareCatalogHandler) Create(c *gin.Context) {
	var payload request.HardwareItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHardwarePayload.HTTPStatus, errInvalidHardwarePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.AddGenericItem(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapHardwareError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromHardwareItem(item))
}

// GetByID godoc
// @Summary      Get a hardware item
// @Tags         hardware
// @Produce      json
// @Param        id   path      string  true  "Hardware item ID"
// @Success      200  {object}  response.HardwareItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /hardware/{id} [get]
func (h *HardwareCatalogHandler) GetByID(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapHardwareError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHardwareItem(item))
}

func mapHardwareError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHardwareID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownTrade):
		return pkg.NewDomainErrorSimple("UNKNOWN_TRADE", "Unknown trade", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidHardwareItem):
		return pkg.NewDomainErrorSimple("INVALID_HARDWARE_ITEM", "Invalid hardware item", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHardwareItemNotFound):
		return pkg.NewDomainErrorSimple("HARDWARE_ITEM_NOT_FOUND", "Hardware item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
