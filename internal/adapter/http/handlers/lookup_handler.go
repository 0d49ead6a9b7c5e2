package handlers

import (
	"net/http"

	response "contractor_takeoff/internal/adapter/http/dto/response"
	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/domain/lookup"
	"contractor_takeoff/pkg"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves the read-only reference tables.
type LookupHandler struct {
	tables lookup.Tables
}

func NewLookupHandler(tables lookup.Tables) *LookupHandler {
	return &LookupHandler{tables: tables}
}

// GetByTrade godoc
// @Summary      Lookup tables of a trade
// @Description  Elevations, accessories, electrical boxes, labor rates and fastener constants
// @Tags         lookups
// @Produce      json
// @Param        trade  path      string  true  "Trade (siding, stone)"
// @Success      200    {object}  response.LookupResponse
// @Failure      404    {object}  pkg.HTTPError
// @Router       /lookups/{trade} [get]
func (h *LookupHandler) GetByTrade(c *gin.Context) {
	trade, err := entities.ParseTrade(c.Param("trade"))
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("UNKNOWN_TRADE", "Unknown trade", http.StatusNotFound))
		return
	}
	table, err := h.tables.Trade(trade)
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("TRADE_NOT_CONFIGURED", "Trade has no lookup tables", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromTradeTable(table))
}
