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

var (
	errInvalidTakeoffPayload  = pkg.NewDomainErrorSimple("INVALID_TAKEOFF_INPUT", "Invalid takeoff payload", http.StatusBadRequest)
	errInvalidOverridePayload = pkg.NewDomainErrorSimple("INVALID_OVERRIDE_INPUT", "Invalid override payload", http.StatusBadRequest)
)

// TakeoffHandler exposes takeoff drafting, preview, persistence and hardware
// override editing.
type TakeoffHandler struct {
	usecase usecase.ITakeoffUseCase
}

func NewTakeoffHandler(uc usecase.ITakeoffUseCase) *TakeoffHandler {
	return &TakeoffHandler{usecase: uc}
}

// Draft godoc
// @Summary      Start a takeoff
// @Description  Returns an unsaved takeoff with one empty measurement per elevation of the trade
// @Tags         takeoffs
// @Accept       json
// @Produce      json
// @Param        body  body      request.DraftRequest  true  "Draft"
// @Success      200   {object}  response.TakeoffResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /takeoffs/draft [post]
func (h *TakeoffHandler) Draft(c *gin.Context) {
	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTakeoffPayload.HTTPStatus, errInvalidTakeoffPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.Draft(c.Request.Context(), payload.Trade, payload.CustomerID, payload.ProjectID)
	if err != nil {
		writeError(c, mapTakeoffError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTakeoff(t))
}

// Preview godoc
// @Summary      Compute a takeoff without saving it
// @Tags         takeoffs
// @Accept       json
// @Produce      json
// @Param        body  body      request.TakeoffRequest  true  "Takeoff"
// @Success      200   {object}  response.TakeoffResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /takeoffs/preview [post]
func (h *TakeoffHandler) Preview(c *gin.Context) {
	var payload request.TakeoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTakeoffPayload.HTTPStatus, errInvalidTakeoffPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.Preview(c.Request.Context(), payload.ToCommand(""))
	if err != nil {
		writeError(c, mapTakeoffError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTakeoff(t))
}

// Create godoc
// @Summary      Save a new takeoff
// @Tags         takeoffs
// @Accept       json
// @Produce      json
// @Param        body  body      request.TakeoffRequest  true  "Takeoff"
// @Success      201   {object}  response.TakeoffResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /takeoffs [post]
func (h *TakeoffHandler) Create(c *gin.Context) {
	h.save(c, "", http.StatusCreated)
}

// Update godoc
// @Summary      Recompute and save an existing takeoff
// @Tags         takeoffs
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Takeoff ID"
// @Param        body  body      request.TakeoffRequest  true  "Takeoff"
// @Success      200   {object}  response.TakeoffResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /takeoffs/{id} [put]
func (h *TakeoffHandler) Update(c *gin.Context) {
	h.save(c, c.Param("id"), http.StatusOK)
}

func (h *TakeoffHandler) save(c *gin.Context, id string, status int) {
	var payload request.TakeoffRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTakeoffPayload.HTTPStatus, errInvalidTakeoffPayload.ToHTTPError())
		return
	}

	t, err := h.usecase.Save(c.Request.Context(), payload.ToCommand(id))
	if err != nil {
		writeError(c, mapTakeoffError(err))
		return
	}
	c.JSON(status, response.FromTakeoff(t))
}

// GetByID godoc
// @Summary      Get a takeoff
// @Tags         takeoffs
// @Produce      json
// @Param        id   path      string  true  "Takeoff ID"
// @Success      200  {object}  response.TakeoffResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /takeoffs/{id} [get]
func (h *TakeoffHandler) GetByID(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapTakeoffError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTakeoff(t))
}

// ListByCustomer godoc
// @Summary      List the takeoffs of a customer
// @Tags         takeoffs
// @Produce      json
// @Param        customer_id  path      string  true  "Customer ID"
// @Success      200          {array}   response.TakeoffResponse
// @Router       /customers/{customer_id}/takeoffs [get]
func (h *TakeoffHandler) ListByCustomer(c *gin.Context) {
	list, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		writeError(c, mapTakeoffError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTakeoffs(list))
}

// Delete godoc
// @Summary      Discard a takeoff
// @Tags         takeoffs
// @Param        id   path  string  true  "Takeoff ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /takeoffs/{id} [delete]
func (h *TakeoffHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapTakeoffError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateHardwareOverride godoc
// @Summary      Set or clear a manual hardware override
// @Description  A null value clears the override and restores the calculated figure
// @Tags         takeoffs
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Takeoff ID"
// @Param        item_id  path      string                   true  "Hardware item ID"
// @Param        body     body      request.OverrideRequest  true  "Override"
// @Success      200      {object}  response.TakeoffResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /takeoffs/{id}/hardware/{item_id} [patch]
func (h *TakeoffHandler) UpdateHardwareOverride(c *gin.Context) {
	var payload request.OverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOverridePayload.HTTPStatus, errInvalidOverridePayload.ToHTTPError())
		return
	}

	t, err := h.usecase.UpdateHardwareOverride(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.ResolveField(), payload.Value)
	if err != nil {
		writeError(c, mapTakeoffError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTakeoff(t))
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapTakeoffError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTakeoffID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownTrade):
		return pkg.NewDomainErrorSimple("UNKNOWN_TRADE", "Unknown trade", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidElevations):
		return pkg.NewDomainErrorSimple("INVALID_ELEVATIONS", "Elevations do not match the trade", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidSelection):
		return pkg.NewDomainErrorSimple("INVALID_SELECTION", "Inconsistent manufacturer selection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOverrideField):
		return pkg.NewDomainErrorSimple("INVALID_OVERRIDE_FIELD", "Override field must be quantity or price", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotSelected):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_SELECTED", "Select a manufacturer and product line before saving", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTakeoffNotFound):
		return pkg.NewDomainErrorSimple("TAKEOFF_NOT_FOUND", "Takeoff not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHardwareItemNotFound):
		return pkg.NewDomainErrorSimple("HARDWARE_ITEM_NOT_FOUND", "Hardware item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
